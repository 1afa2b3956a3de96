package services

import (
	"testing"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/schedule"
)

func TestPermissionsForOwner(t *testing.T) {
	ownerID := uuid.New()
	itinerary := &db_models.Itinerary{OwnerID: ownerID}

	perms := permissionsFor(itinerary, ownerID.String())

	if !perms.CanView || !perms.CanEdit || !perms.CanManageBudget ||
		!perms.CanManageSchedule || !perms.CanInviteOthers {
		t.Errorf("owner should hold every permission, got %+v", perms)
	}
}

func TestPermissionsForCollaborator(t *testing.T) {
	collaboratorID := uuid.New()
	itinerary := &db_models.Itinerary{
		OwnerID: uuid.New(),
		Collaborators: []db_models.Collaborator{
			{
				UserID:          &collaboratorID,
				CanView:         true,
				CanManageBudget: true,
			},
		},
	}

	perms := permissionsFor(itinerary, collaboratorID.String())

	if !perms.CanView || !perms.CanManageBudget {
		t.Errorf("granted permissions missing: %+v", perms)
	}
	if perms.CanEdit || perms.CanInviteOthers {
		t.Errorf("ungranted permissions present: %+v", perms)
	}
}

func TestPermissionsForStrangerOnSharedTrip(t *testing.T) {
	itinerary := &db_models.Itinerary{OwnerID: uuid.New(), IsShared: true}

	perms := permissionsFor(itinerary, uuid.NewString())

	if !perms.CanView {
		t.Error("shared trips should be viewable by anyone authenticated")
	}
	if perms.CanEdit {
		t.Error("strangers must not edit shared trips")
	}
}

func TestPermissionsForStrangerOnPrivateTrip(t *testing.T) {
	itinerary := &db_models.Itinerary{OwnerID: uuid.New()}

	perms := permissionsFor(itinerary, uuid.NewString())

	if perms.CanView {
		t.Error("private trips must not be viewable by strangers")
	}
}

func TestPermissionsIgnoresPendingInvites(t *testing.T) {
	// A collaborator row without a linked user (pending email invite) must
	// grant nothing to any caller.
	itinerary := &db_models.Itinerary{
		OwnerID: uuid.New(),
		Collaborators: []db_models.Collaborator{
			{UserID: nil, Email: "pending@example.com", CanView: true},
		},
	}

	perms := permissionsFor(itinerary, uuid.NewString())

	if perms.CanView {
		t.Error("pending invite rows must not grant view access")
	}
}

func TestAssignActivityIDsFillsMissingOnly(t *testing.T) {
	days := []schedule.Day{
		{
			Date: "2025-05-25",
			Activities: []schedule.Activity{
				{ID: "existing-id", Title: "City Tour"},
				{Title: "Dinner"},
			},
		},
	}

	result := assignActivityIDs(days)

	if result[0].Activities[0].ID != "existing-id" {
		t.Errorf("existing id was rewritten to %q", result[0].Activities[0].ID)
	}
	if result[0].Activities[1].ID == "" {
		t.Error("missing id was not assigned")
	}
	if _, err := uuid.Parse(result[0].Activities[1].ID); err != nil {
		t.Errorf("assigned id %q is not a uuid: %v", result[0].Activities[1].ID, err)
	}
}
