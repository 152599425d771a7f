package transportorder

import (
	"errors"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// ErrCargoLineIsNotConstructed is returned when a CargoLine was not
// created through NewCargoLine.
var ErrCargoLineIsNotConstructed = errors.New("CargoLine must be created via NewCargoLine")

// CargoLine is a child row of a TransportOrder describing one unit of
// cargo. For container orders each line carries the container number the
// assignment rows are matched against.
type CargoLine struct {
	id              kernel.UUID
	containerNumber string

	isConstructed bool
}

// NewCargoLine creates a cargo line for the given container number.
func NewCargoLine(id kernel.UUID, containerNumber string) (*CargoLine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if containerNumber == "" {
		return nil, errs.NewValueIsRequiredError("container number")
	}

	return &CargoLine{
		id:              id,
		containerNumber: containerNumber,
		isConstructed:   true,
	}, nil
}

// Validate ensures the line was built through the constructor.
func (c *CargoLine) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (c *CargoLine) ID() kernel.UUID {
	return c.id
}

// ContainerNumber returns the container this line stands for.
func (c *CargoLine) ContainerNumber() string {
	return c.containerNumber
}
