package commands_test

import (
	"testing"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/transportorder"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignVehicleCommand_ValidInput(t *testing.T) {
	details := transportorder.AssignmentDetails{
		TransporterType: transportorder.InHouse,
		AssignedVehicle: "TRUCK-01",
		Amount:          1500,
		Route:           "DAR - MWANZA",
	}

	cmd, err := commands.NewAssignVehicleCommand("TA-0001", details, "Transportation Order", "TO-0001")
	require.NoError(t, err)
	assert.Equal(t, "TA-0001", cmd.CargoRef())
	assert.Equal(t, details, cmd.Details())
	assert.Equal(t, "Transportation Order", cmd.ParentDoctype())
	assert.Equal(t, "TO-0001", cmd.ParentDocname())
}

func TestNewAssignVehicleCommand_EmptyCargoRef(t *testing.T) {
	_, err := commands.NewAssignVehicleCommand("", transportorder.AssignmentDetails{}, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAssignVehicleCommand_ParentIsOptional(t *testing.T) {
	// Update-path callers do not know the parent; only an insert needs it.
	cmd, err := commands.NewAssignVehicleCommand("TA-0002", transportorder.AssignmentDetails{}, "", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.ParentDoctype())
	assert.Empty(t, cmd.ParentDocname())
}

func TestAssignVehicleCommand_Validate(t *testing.T) {
	cmd, err := commands.NewAssignVehicleCommand("TA-0003", transportorder.AssignmentDetails{}, "", "")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	zero := commands.AssignVehicleCommand{}
	err = zero.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAssignVehicleCommandIsNotConstructed)
}
