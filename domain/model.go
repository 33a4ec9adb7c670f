package domain

import (
	"encoding/json"
	"io"
	"time"
)

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	UserType  Role   `json:"userType"`
}

type Reservation struct {
	ID           string            `json:"id"`
	HostelID     string            `json:"hostelId"`
	StudentID    string            `json:"studentId"`
	RoomType     RoomTypeKind      `json:"roomType"`
	Status       ReservationStatus `json:"status"`
	Message      string            `json:"message,omitempty"`
	RejectReason string            `json:"rejectReason,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// TransactionEvidence is the payment proof a student attaches when creating
// a booking.
type TransactionEvidence struct {
	Image       string `json:"image"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	FromAccount string `json:"fromAccount"`
	ToAccount   string `json:"toAccount"`
}

// RefundEvidence is set by the manager only when a booking is disapproved.
type RefundEvidence struct {
	Image string `json:"image"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

type Booking struct {
	ID          string              `json:"id"`
	HostelID    string              `json:"hostelId"`
	StudentID   string              `json:"studentId"`
	RoomType    RoomTypeKind        `json:"roomType"`
	Status      BookingStatus       `json:"status"`
	Transaction TransactionEvidence `json:"transaction"`
	Refund      *RefundEvidence     `json:"refund,omitempty"`
	KickReason  KickReason          `json:"kickReason,omitempty"`
	Rating      int                 `json:"rating,omitempty"`
	Review      string              `json:"review,omitempty"`
	LeaveReason string              `json:"leaveReason,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type RoomType struct {
	Type           RoomTypeKind `json:"type"`
	TotalRooms     int          `json:"totalRooms"`
	PersonsInRoom  int          `json:"personsInRoom"`
	Price          int          `json:"price"`
	AvailableRooms int          `json:"availableRooms"`
	// FullRoomPrice is the discounted whole-room price, only meaningful for
	// SHARED_FULLROOM entries.
	FullRoomPrice int `json:"fullRoomPrice,omitempty"`
}

type Facilities struct {
	Wifi                   bool        `json:"wifi"`
	WifiSpeed              string      `json:"wifiSpeed,omitempty"`
	WifiMaxUsers           int         `json:"wifiMaxUsers,omitempty"`
	ElectricityBilling     BillingType `json:"electricityBilling"`
	ElectricityRatePerUnit float64     `json:"electricityRatePerUnit,omitempty"`
	Laundry                bool        `json:"laundry"`
	Mess                   bool        `json:"mess"`
	MessMenu               string      `json:"messMenu,omitempty"`
	CustomFacilities       []string    `json:"customFacilities,omitempty"`
}

type Hostel struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"ownerId"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	City            string     `json:"city"`
	Address         string     `json:"address"`
	RoomTypes       []RoomType `json:"roomTypes"`
	Facilities      Facilities `json:"facilities"`
	NearbyLocations []string   `json:"nearbyLocations,omitempty"`
	SeoKeywords     []string   `json:"seoKeywords,omitempty"`
	Images          []string   `json:"images,omitempty"`
}

type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountTitle  string `json:"accountTitle,omitempty"`
}

type Verification struct {
	ID             string             `json:"id"`
	ManagerID      string             `json:"managerId"`
	Status         VerificationStatus `json:"status"`
	Easypaisa      string             `json:"easypaisa,omitempty"`
	Jazzcash       string             `json:"jazzcash,omitempty"`
	BankAccounts   []BankAccount      `json:"bankAccounts,omitempty"`
	BuildingImages []string           `json:"buildingImages,omitempty"`
	RulesAccepted  bool               `json:"rulesAccepted"`
}

type Conversation struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"studentId"`
	ManagerID     string    `json:"managerId"`
	LastMessage   string    `json:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"lastMessageAt,omitempty"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// IsMine is decided against the authenticated user at read time, it is not
// stored server-side.
func (m *Message) IsMine(userID string) bool {
	return m.SenderID == userID
}

type Report struct {
	ID          string         `json:"id"`
	BookingID   string         `json:"bookingId"`
	Status      ReportStatus   `json:"status"`
	Description string         `json:"description"`
	Decision    ReportDecision `json:"decision,omitempty"`
	Resolution  string         `json:"resolution,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type Reservations []*Reservation
type Bookings []*Booking
type Messages []*Message

func (o *Reservation) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Reservation) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}

func (o *Booking) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Booking) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}

func (o *Reservations) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Reservations) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}

func (o *Bookings) ToJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	return e.Encode(o)
}

func (o *Bookings) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}

func (o *Messages) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(o)
}
