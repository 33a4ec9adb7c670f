package wizard

import (
	"strconv"
	"strings"

	"hostelhub_client/client"
	"hostelhub_client/domain"
)

// MaxHostelImages caps the room-image attachments on a hostel submission.
const MaxHostelImages = 10

// BasicInfoForm is the first hostel step.
type BasicInfoForm struct {
	Name            string `validate:"required"`
	Description     string `validate:"required"`
	City            string `validate:"required"`
	Address         string `validate:"required"`
	NearbyLocations []string
}

// RoomTypeEntry holds one room-type row. Numeric fields stay free-text so
// the form can hold anything mid-entry, parsing happens at assembly.
type RoomTypeEntry struct {
	Type           domain.RoomTypeKind `validate:"required"`
	TotalRooms     string              `validate:"required,number"`
	PersonsInRoom  string              `validate:"required,number"`
	Price          string              `validate:"required,number"`
	AvailableRooms string              `validate:"required,number"`
	FullRoomPrice  string              `validate:"required_if=Type SHARED_FULLROOM,omitempty,number"`
}

type RoomTypesForm struct {
	Entries []RoomTypeEntry
}

type FacilitiesForm struct {
	Wifi                   bool
	WifiSpeed              string             `validate:"required_if=Wifi true"`
	WifiMaxUsers           string             `validate:"required_if=Wifi true,omitempty,number"`
	ElectricityBilling     domain.BillingType `validate:"required,oneof=SELF INCLUDED"`
	ElectricityRatePerUnit string             `validate:"required_if=ElectricityBilling SELF,omitempty,numeric"`
	Laundry                bool
	Mess                   bool
	MessMenu               string
	CustomFacilities       []string
}

type MediaForm struct {
	Images      []client.FilePart
	SeoKeywords []string
}

// HostelWizard drives hostel creation and editing: basics, room types,
// facilities, media.
type HostelWizard struct {
	*Wizard
	Basics     BasicInfoForm
	Rooms      RoomTypesForm
	Facilities FacilitiesForm
	Media      MediaForm
}

func NewHostelWizard() *HostelWizard {
	w := &HostelWizard{
		Facilities: FacilitiesForm{ElectricityBilling: domain.BillingIncluded},
	}
	w.Wizard = New(
		Step{Name: "basics", Validate: w.validateBasics},
		Step{Name: "rooms", Validate: w.validateRooms},
		Step{Name: "facilities", Validate: w.validateFacilities},
		Step{Name: "media", Validate: w.validateMedia},
	)
	return w
}

// NewHostelEditWizard preloads the form from an existing hostel.
func NewHostelEditWizard(h *domain.Hostel) *HostelWizard {
	w := NewHostelWizard()
	w.Basics = BasicInfoForm{
		Name:            h.Name,
		Description:     h.Description,
		City:            h.City,
		Address:         h.Address,
		NearbyLocations: append([]string(nil), h.NearbyLocations...),
	}
	for _, rt := range h.RoomTypes {
		entry := RoomTypeEntry{
			Type:           rt.Type,
			TotalRooms:     strconv.Itoa(rt.TotalRooms),
			PersonsInRoom:  strconv.Itoa(rt.PersonsInRoom),
			Price:          strconv.Itoa(rt.Price),
			AvailableRooms: strconv.Itoa(rt.AvailableRooms),
		}
		if rt.Type == domain.RoomSharedFullRoom {
			entry.FullRoomPrice = strconv.Itoa(rt.FullRoomPrice)
		}
		w.Rooms.Entries = append(w.Rooms.Entries, entry)
	}
	w.Facilities = FacilitiesForm{
		Wifi:               h.Facilities.Wifi,
		WifiSpeed:          h.Facilities.WifiSpeed,
		ElectricityBilling: h.Facilities.ElectricityBilling,
		Laundry:            h.Facilities.Laundry,
		Mess:               h.Facilities.Mess,
		MessMenu:           h.Facilities.MessMenu,
		CustomFacilities:   append([]string(nil), h.Facilities.CustomFacilities...),
	}
	if h.Facilities.Wifi {
		w.Facilities.WifiMaxUsers = strconv.Itoa(h.Facilities.WifiMaxUsers)
	}
	if h.Facilities.ElectricityBilling == domain.BillingSelf {
		w.Facilities.ElectricityRatePerUnit = strconv.FormatFloat(h.Facilities.ElectricityRatePerUnit, 'f', -1, 64)
	}
	w.Media.SeoKeywords = append([]string(nil), h.SeoKeywords...)
	return w
}

// AddRoomType appends a new entry typed with the lowest-priority kind not
// already in the working set. Returns false when all three kinds are
// present, which the caller surfaces as an informational notice.
func (w *HostelWizard) AddRoomType() bool {
	used := map[domain.RoomTypeKind]bool{}
	for _, entry := range w.Rooms.Entries {
		used[entry.Type] = true
	}
	for _, kind := range domain.RoomTypeFillOrder {
		if !used[kind] {
			w.Rooms.Entries = append(w.Rooms.Entries, RoomTypeEntry{Type: kind})
			return true
		}
	}
	return false
}

func (w *HostelWizard) RemoveRoomType(index int) {
	if index < 0 || index >= len(w.Rooms.Entries) {
		return
	}
	w.Rooms.Entries = append(w.Rooms.Entries[:index], w.Rooms.Entries[index+1:]...)
}

// AvailableTypes lists the kinds the entry at index may switch to: its own
// kind plus any kind no other entry holds.
func (w *HostelWizard) AvailableTypes(index int) []domain.RoomTypeKind {
	used := map[domain.RoomTypeKind]bool{}
	for i, entry := range w.Rooms.Entries {
		if i != index {
			used[entry.Type] = true
		}
	}
	var kinds []domain.RoomTypeKind
	for _, kind := range domain.RoomTypeFillOrder {
		if !used[kind] {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func (w *HostelWizard) validateBasics() FieldErrors {
	return checkStruct(&w.Basics)
}

func (w *HostelWizard) validateRooms() FieldErrors {
	if len(w.Rooms.Entries) == 0 {
		return FieldErrors{"roomTypes": "Add at least one room type"}
	}
	seen := map[domain.RoomTypeKind]bool{}
	for _, entry := range w.Rooms.Entries {
		if seen[entry.Type] {
			return FieldErrors{"roomTypes": "Each room type may appear only once"}
		}
		seen[entry.Type] = true
		// entry is a copy: blank the field the current type hides so stale
		// input left behind a type switch never blocks the step.
		if entry.Type != domain.RoomSharedFullRoom {
			entry.FullRoomPrice = ""
		}
		if errs := checkStruct(&entry); len(errs) > 0 {
			return errs
		}
	}
	return nil
}

// validateFacilities checks a copy with the fields hidden by the current
// toggles blanked. The form state itself keeps whatever was typed.
func (w *HostelWizard) validateFacilities() FieldErrors {
	f := w.Facilities
	if !f.Wifi {
		f.WifiSpeed = ""
		f.WifiMaxUsers = ""
	}
	if f.ElectricityBilling != domain.BillingSelf {
		f.ElectricityRatePerUnit = ""
	}
	return checkStruct(&f)
}

func (w *HostelWizard) validateMedia() FieldErrors {
	if len(w.Media.Images) == 0 {
		return FieldErrors{"images": "Attach at least one image"}
	}
	if len(w.Media.Images) > MaxHostelImages {
		return FieldErrors{"images": "At most " + strconv.Itoa(MaxHostelImages) + " images are allowed"}
	}
	return nil
}

// Submit re-validates every step and assembles the payload from active
// fields only. Inactive conditional fields stay in the form state but are
// never parsed or transmitted.
func (w *HostelWizard) Submit() (*client.HostelPayload, FieldErrors) {
	if _, errs := w.ValidateAll(); len(errs) > 0 {
		return nil, errs
	}

	payload := &client.HostelPayload{
		Name:            strings.TrimSpace(w.Basics.Name),
		Description:     strings.TrimSpace(w.Basics.Description),
		City:            strings.TrimSpace(w.Basics.City),
		Address:         strings.TrimSpace(w.Basics.Address),
		NearbyLocations: trimAll(w.Basics.NearbyLocations),
		SeoKeywords:     trimAll(w.Media.SeoKeywords),
		Images:          w.Media.Images,
	}

	for _, entry := range w.Rooms.Entries {
		rt := client.RoomTypePayload{
			Type:           entry.Type,
			TotalRooms:     atoi(entry.TotalRooms),
			PersonsInRoom:  atoi(entry.PersonsInRoom),
			Price:          atoi(entry.Price),
			AvailableRooms: atoi(entry.AvailableRooms),
		}
		if entry.Type == domain.RoomSharedFullRoom {
			price := atoi(entry.FullRoomPrice)
			rt.FullRoomPrice = &price
		}
		payload.RoomTypes = append(payload.RoomTypes, rt)
	}

	f := w.Facilities
	payload.Facilities = client.FacilitiesPayload{
		Wifi:               f.Wifi,
		ElectricityBilling: f.ElectricityBilling,
		Laundry:            f.Laundry,
		Mess:               f.Mess,
		CustomFacilities:   trimAll(f.CustomFacilities),
	}
	if f.Wifi {
		payload.Facilities.WifiSpeed = strings.TrimSpace(f.WifiSpeed)
		users := atoi(f.WifiMaxUsers)
		payload.Facilities.WifiMaxUsers = &users
	}
	if f.ElectricityBilling == domain.BillingSelf {
		rate := atof(f.ElectricityRatePerUnit)
		payload.Facilities.ElectricityRatePerUnit = &rate
	}
	if f.Mess {
		payload.Facilities.MessMenu = strings.TrimSpace(f.MessMenu)
	}

	return payload, nil
}

// atoi and atof run after validation has passed, the inputs are known good.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
