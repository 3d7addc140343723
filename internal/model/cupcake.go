package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// DefaultImageURL is stored when a cupcake is created without an image.
const DefaultImageURL = "https://tinyurl.com/demo-cupcake"

// Cupcake is a single cupcake record.
type Cupcake struct {
	ID     int64   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Flavor string  `json:"flavor" db:"flavor" gorm:"type:text;not null"`
	Size   string  `json:"size" db:"size" gorm:"type:text;not null"`
	Rating float64 `json:"rating" db:"rating" gorm:"not null"`
	Image  string  `json:"image" db:"image" gorm:"type:text;not null"`
}

// TableName pins the gorm table name.
func (Cupcake) TableName() string {
	return "cupcakes"
}

// Rating is a float that also accepts numeric JSON strings, since HTML form
// values are posted as text.
type Rating float64

// UnmarshalJSON decodes a JSON number or a quoted number.
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !isFinite(f) {
			return fmt.Errorf("rating %q is not a finite number", s)
		}
		*r = Rating(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("rating must be a number: %w", err)
	}
	*r = Rating(f)
	return nil
}

// Valid reports whether r is a finite number. NaN and infinities cannot be
// encoded as JSON.
func (r Rating) Valid() bool {
	return isFinite(float64(r))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NewCupcake is the payload for creating a cupcake. A nil field was absent
// from the request.
type NewCupcake struct {
	Flavor *string `json:"flavor" yaml:"flavor"`
	Size   *string `json:"size" yaml:"size"`
	Rating *Rating `json:"rating" yaml:"rating"`
	Image  *string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Validate checks the required fields in declaration order and returns the
// first problem found.
func (n *NewCupcake) Validate() error {
	if n == nil || n.Flavor == nil {
		return ErrMissingFlavor
	}
	if n.Size == nil {
		return ErrMissingSize
	}
	if n.Rating == nil {
		return ErrMissingRating
	}
	if !n.Rating.Valid() {
		return ErrInvalidRating
	}
	return nil
}

// CupcakePatch is a partial update. Only non-nil fields are applied.
type CupcakePatch struct {
	Flavor *string `json:"flavor,omitempty"`
	Size   *string `json:"size,omitempty"`
	Rating *Rating `json:"rating,omitempty"`
	Image  *string `json:"image,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *CupcakePatch) IsEmpty() bool {
	return p == nil || (p.Flavor == nil && p.Size == nil && p.Rating == nil && p.Image == nil)
}

// Validate rejects a patch whose rating is not finite.
func (p *CupcakePatch) Validate() error {
	if p != nil && p.Rating != nil && !p.Rating.Valid() {
		return ErrInvalidRating
	}
	return nil
}

// Apply merges the present fields of p into c.
func (p *CupcakePatch) Apply(c *Cupcake) {
	if p == nil || c == nil {
		return
	}
	if p.Flavor != nil {
		c.Flavor = *p.Flavor
	}
	if p.Size != nil {
		c.Size = *p.Size
	}
	if p.Rating != nil {
		c.Rating = float64(*p.Rating)
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
}

// CupcakeResponse wraps a single cupcake.
type CupcakeResponse struct {
	Cupcake Cupcake `json:"cupcake"`
}

// CupcakeListResponse wraps all cupcakes.
type CupcakeListResponse struct {
	Cupcakes []Cupcake `json:"cupcakes"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
