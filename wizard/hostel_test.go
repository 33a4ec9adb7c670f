package wizard

import (
	"fmt"
	"testing"

	"hostelhub_client/client"
	"hostelhub_client/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHostelWizard() *HostelWizard {
	w := NewHostelWizard()
	w.Basics = BasicInfoForm{
		Name:            "Sunrise Hostel",
		Description:     "Near campus",
		City:            "Lahore",
		Address:         "12 Mall Road",
		NearbyLocations: []string{" main market ", "", "bus stop"},
	}
	w.Rooms.Entries = []RoomTypeEntry{{
		Type:           domain.RoomShared,
		TotalRooms:     "10",
		PersonsInRoom:  "4",
		Price:          "8000",
		AvailableRooms: "25",
	}}
	w.Facilities = FacilitiesForm{
		ElectricityBilling: domain.BillingIncluded,
	}
	w.Media.Images = []client.FilePart{{Path: "/tmp/room1.jpg", Data: []byte("x")}}
	return w
}

func TestRoomTypeFillOrder(t *testing.T) {
	w := NewHostelWizard()

	require.True(t, w.AddRoomType())
	require.True(t, w.AddRoomType())
	require.True(t, w.AddRoomType())
	assert.Equal(t, domain.RoomShared, w.Rooms.Entries[0].Type)
	assert.Equal(t, domain.RoomPrivate, w.Rooms.Entries[1].Type)
	assert.Equal(t, domain.RoomSharedFullRoom, w.Rooms.Entries[2].Type)

	// all three present: add is a no-op, not an error
	assert.False(t, w.AddRoomType())
	assert.Len(t, w.Rooms.Entries, 3)
}

func TestAddPicksLowestUnusedType(t *testing.T) {
	w := NewHostelWizard()
	w.Rooms.Entries = []RoomTypeEntry{{Type: domain.RoomPrivate}}

	require.True(t, w.AddRoomType())
	assert.Equal(t, domain.RoomShared, w.Rooms.Entries[1].Type)

	require.True(t, w.AddRoomType())
	assert.Equal(t, domain.RoomSharedFullRoom, w.Rooms.Entries[2].Type)
}

func TestAvailableTypesExcludesOtherEntries(t *testing.T) {
	w := NewHostelWizard()
	w.Rooms.Entries = []RoomTypeEntry{
		{Type: domain.RoomShared},
		{Type: domain.RoomPrivate},
	}

	// entry 0 may keep its own type or take the unused one
	assert.ElementsMatch(t,
		[]domain.RoomTypeKind{domain.RoomShared, domain.RoomSharedFullRoom},
		w.AvailableTypes(0))
	assert.ElementsMatch(t,
		[]domain.RoomTypeKind{domain.RoomPrivate, domain.RoomSharedFullRoom},
		w.AvailableTypes(1))
}

func TestDuplicateRoomTypesRejected(t *testing.T) {
	w := validHostelWizard()
	w.Rooms.Entries = append(w.Rooms.Entries, w.Rooms.Entries[0])

	errs := w.validateRooms()
	require.Contains(t, errs, "roomTypes")
}

func TestFullRoomPriceRequiredOnlyForFullRoom(t *testing.T) {
	entry := RoomTypeEntry{
		Type:           domain.RoomSharedFullRoom,
		TotalRooms:     "2",
		PersonsInRoom:  "4",
		Price:          "6000",
		AvailableRooms: "8",
	}
	errs := checkStruct(&entry)
	require.Contains(t, errs, "FullRoomPrice")

	entry.FullRoomPrice = "20000"
	assert.Empty(t, checkStruct(&entry))

	entry.Type = domain.RoomShared
	entry.FullRoomPrice = ""
	assert.Empty(t, checkStruct(&entry))
}

func TestImageCountBoundaries(t *testing.T) {
	w := validHostelWizard()

	w.Media.Images = nil
	assert.Contains(t, w.validateMedia(), "images")

	w.Media.Images = imageList(1)
	assert.Empty(t, w.validateMedia())

	w.Media.Images = imageList(MaxHostelImages)
	assert.Empty(t, w.validateMedia())

	w.Media.Images = imageList(MaxHostelImages + 1)
	assert.Contains(t, w.validateMedia(), "images")
}

func imageList(n int) []client.FilePart {
	parts := make([]client.FilePart, n)
	for i := range parts {
		parts[i] = client.FilePart{Path: fmt.Sprintf("/tmp/img%d.jpg", i), Data: []byte("x")}
	}
	return parts
}

// Billing switched from SELF to INCLUDED mid-entry: the rate stays in the
// form state but never reaches the payload.
func TestInactiveConditionalFieldExcludedFromPayload(t *testing.T) {
	w := validHostelWizard()
	w.Facilities.ElectricityBilling = domain.BillingSelf
	w.Facilities.ElectricityRatePerUnit = "42.5"

	payload, errs := w.Submit()
	require.Nil(t, errs)
	require.NotNil(t, payload.Facilities.ElectricityRatePerUnit)
	assert.Equal(t, 42.5, *payload.Facilities.ElectricityRatePerUnit)

	w.Facilities.ElectricityBilling = domain.BillingIncluded
	payload, errs = w.Submit()
	require.Nil(t, errs)
	assert.Equal(t, "42.5", w.Facilities.ElectricityRatePerUnit, "state is retained")
	assert.Nil(t, payload.Facilities.ElectricityRatePerUnit, "payload is not")
}

// Garbage typed into a gated field must stop mattering the moment the
// governing toggle hides the field again.
func TestStaleInactiveInputDoesNotBlock(t *testing.T) {
	w := validHostelWizard()
	w.Facilities.Wifi = false
	w.Facilities.WifiMaxUsers = "abc"
	w.Facilities.ElectricityBilling = domain.BillingIncluded
	w.Facilities.ElectricityRatePerUnit = "oops"
	assert.Empty(t, w.validateFacilities())

	w.Rooms.Entries[0].Type = domain.RoomShared
	w.Rooms.Entries[0].FullRoomPrice = "not a price"
	assert.Empty(t, w.validateRooms())

	payload, errs := w.Submit()
	require.Nil(t, errs)
	assert.Nil(t, payload.Facilities.WifiMaxUsers)
	assert.Nil(t, payload.Facilities.ElectricityRatePerUnit)
	assert.Nil(t, payload.RoomTypes[0].FullRoomPrice)

	// reactivating the toggle brings the stale value back under validation
	w.Facilities.ElectricityBilling = domain.BillingSelf
	require.Contains(t, w.validateFacilities(), "ElectricityRatePerUnit")
}

func TestWifiSubfieldsGatedByToggle(t *testing.T) {
	w := validHostelWizard()

	w.Facilities.Wifi = true
	errs := w.validateFacilities()
	require.Contains(t, errs, "WifiSpeed")

	w.Facilities.WifiSpeed = "20 Mbps"
	w.Facilities.WifiMaxUsers = "15"
	require.Empty(t, w.validateFacilities())

	payload, errs := w.Submit()
	require.Nil(t, errs)
	assert.Equal(t, "20 Mbps", payload.Facilities.WifiSpeed)
	require.NotNil(t, payload.Facilities.WifiMaxUsers)
	assert.Equal(t, 15, *payload.Facilities.WifiMaxUsers)

	w.Facilities.Wifi = false
	payload, errs = w.Submit()
	require.Nil(t, errs)
	assert.Empty(t, payload.Facilities.WifiSpeed)
	assert.Nil(t, payload.Facilities.WifiMaxUsers)
}

func TestSubmitParsesAndFilters(t *testing.T) {
	w := validHostelWizard()
	w.Facilities.CustomFacilities = []string{" cctv ", "", "generator"}
	w.Media.SeoKeywords = []string{"hostel", " ", "lahore "}

	payload, errs := w.Submit()
	require.Nil(t, errs)

	assert.Equal(t, []string{"main market", "bus stop"}, payload.NearbyLocations)
	assert.Equal(t, []string{"cctv", "generator"}, payload.Facilities.CustomFacilities)
	assert.Equal(t, []string{"hostel", "lahore"}, payload.SeoKeywords)

	require.Len(t, payload.RoomTypes, 1)
	rt := payload.RoomTypes[0]
	assert.Equal(t, 10, rt.TotalRooms)
	assert.Equal(t, 4, rt.PersonsInRoom)
	assert.Equal(t, 8000, rt.Price)
	assert.Equal(t, 25, rt.AvailableRooms)
	assert.Nil(t, rt.FullRoomPrice)
}

func TestSubmitRevalidatesEverything(t *testing.T) {
	w := validHostelWizard()

	// walk forward through all steps
	for !w.OnLastStep() {
		require.Nil(t, w.Next())
	}

	// then break an earlier step
	w.Basics.Name = ""
	payload, errs := w.Submit()
	assert.Nil(t, payload)
	require.Contains(t, errs, "Name")
}

func TestNumericFieldsStayFreeTextUntilSubmit(t *testing.T) {
	w := validHostelWizard()
	w.Rooms.Entries[0].Price = "not a number"

	// holding garbage is fine, progressing past the step is not
	errs := w.validateRooms()
	require.Contains(t, errs, "Price")
}

func TestEditWizardPreloadsState(t *testing.T) {
	hostel := &domain.Hostel{
		Name:    "Old Name",
		City:    "Karachi",
		Address: "1 Main St",
		RoomTypes: []domain.RoomType{{
			Type:           domain.RoomSharedFullRoom,
			TotalRooms:     3,
			PersonsInRoom:  4,
			Price:          5000,
			AvailableRooms: 12,
			FullRoomPrice:  18000,
		}},
		Facilities: domain.Facilities{
			Wifi:                   true,
			WifiSpeed:              "10 Mbps",
			WifiMaxUsers:           8,
			ElectricityBilling:     domain.BillingSelf,
			ElectricityRatePerUnit: 55,
		},
	}

	w := NewHostelEditWizard(hostel)
	assert.Equal(t, "Old Name", w.Basics.Name)
	require.Len(t, w.Rooms.Entries, 1)
	assert.Equal(t, "18000", w.Rooms.Entries[0].FullRoomPrice)
	assert.Equal(t, "8", w.Facilities.WifiMaxUsers)
	assert.Equal(t, "55", w.Facilities.ElectricityRatePerUnit)
}
