package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Defaults applied to optional Frame and Piece fields.
const (
	DefaultFrameDuration = 1.0
	DefaultPieceRotation = 0.0
	DefaultPieceSize     = 1.0
	DefaultPieceOpacity  = 1.0
)

// Piece is a drawable token within a frame.
type Piece struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Color    string  `json:"color"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Size     float64 `json:"size"`
	Label    *string `json:"label"`
	Opacity  float64 `json:"opacity"`
}

// Frame is one timed step of a play's animation.
type Frame struct {
	FrameNumber int     `json:"frame_number"`
	Duration    float64 `json:"duration"`
	Pieces      []Piece `json:"pieces"`
}

// FrameData is the ordered frame list stored as JSON in plays.frame_data.
// A nil FrameData is stored as NULL.
type FrameData []Frame

// Value implements driver.Valuer.
func (f FrameData) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame data: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (f *FrameData) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported frame data type %T", src)
	}

	var frames FrameData
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("failed to unmarshal frame data: %w", err)
	}
	*f = frames
	return nil
}

// Play represents a play in the database.
type Play struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	FrameData   FrameData `db:"frame_data"`
	IsPrivate   bool      `db:"is_private"`
	CreatedAt   time.Time `db:"created_at"`
	OwnerID     int64     `db:"owner_id"`
}

// PlayOut is the public representation of a play.
type PlayOut struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FrameData   FrameData `json:"frame_data"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     int64     `json:"owner_id"`
}

// ToPlayOut maps a stored play onto its public representation.
func ToPlayOut(p *Play) PlayOut {
	return PlayOut{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		FrameData:   p.FrameData,
		IsPrivate:   p.IsPrivate,
		CreatedAt:   p.CreatedAt.UTC(),
		OwnerID:     p.OwnerID,
	}
}

// ToPlayOuts maps a list of stored plays.
func ToPlayOuts(plays []Play) []PlayOut {
	out := make([]PlayOut, 0, len(plays))
	for i := range plays {
		out = append(out, ToPlayOut(&plays[i]))
	}
	return out
}

// PieceInput is a piece as submitted by a client. Optional fields are
// pointers so omission can be told apart from zero.
type PieceInput struct {
	ID       *int64   `json:"id" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Color    string   `json:"color" binding:"required"`
	X        *float64 `json:"x" binding:"required"`
	Y        *float64 `json:"y" binding:"required"`
	Rotation *float64 `json:"rotation"`
	Size     *float64 `json:"size"`
	Label    *string  `json:"label"`
	Opacity  *float64 `json:"opacity"`
}

// FrameInput is a frame as submitted by a client.
type FrameInput struct {
	FrameNumber *int         `json:"frame_number" binding:"required"`
	Duration    *float64     `json:"duration"`
	Pieces      []PieceInput `json:"pieces" binding:"unique=ID,dive"`
}

// PlayCreateRequest is the body of POST /plays. Any owner_id sent by the
// client is not part of the contract and is dropped on decode.
type PlayCreateRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	FrameData   []FrameInput `json:"frame_data" binding:"omitempty,dive"`
	IsPrivate   bool         `json:"is_private"`
}

// PlayUpdateRequest is the body of PUT /plays/{id}. All fields are replaced.
type PlayUpdateRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	FrameData   []FrameInput `json:"frame_data" binding:"omitempty,dive"`
	IsPrivate   bool         `json:"is_private"`
}

// NormalizeFrames converts client frames into stored frames, filling in the
// defaults for omitted optional fields. A nil input stays nil.
func NormalizeFrames(in []FrameInput) FrameData {
	if in == nil {
		return nil
	}
	frames := make(FrameData, 0, len(in))
	for _, f := range in {
		frame := Frame{
			FrameNumber: *f.FrameNumber,
			Duration:    valueOr(f.Duration, DefaultFrameDuration),
			Pieces:      make([]Piece, 0, len(f.Pieces)),
		}
		for _, p := range f.Pieces {
			frame.Pieces = append(frame.Pieces, Piece{
				ID:       *p.ID,
				Type:     p.Type,
				Color:    p.Color,
				X:        valueOr(p.X, 0),
				Y:        valueOr(p.Y, 0),
				Rotation: valueOr(p.Rotation, DefaultPieceRotation),
				Size:     valueOr(p.Size, DefaultPieceSize),
				Label:    p.Label,
				Opacity:  valueOr(p.Opacity, DefaultPieceOpacity),
			})
		}
		frames = append(frames, frame)
	}
	return frames
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
