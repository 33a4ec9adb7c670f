package wizard

import (
	"strconv"
	"strings"

	"hostelhub_client/client"
	"hostelhub_client/domain"
)

// MaxVerificationImages caps the building-image attachments on a
// verification submission.
const MaxVerificationImages = 5

type BankEntry struct {
	BankName      string
	AccountNumber string
	AccountTitle  string
}

func (b BankEntry) complete() bool {
	return strings.TrimSpace(b.BankName) != "" && strings.TrimSpace(b.AccountNumber) != ""
}

type PaymentMethodsForm struct {
	Easypaisa string
	Jazzcash  string
	Banks     []BankEntry
}

type BuildingForm struct {
	Images []client.FilePart
}

type RulesForm struct {
	Accepted bool
}

// VerificationWizard drives the manager ownership/payment submission:
// payment methods, building images, rules acceptance.
type VerificationWizard struct {
	*Wizard
	Payment  PaymentMethodsForm
	Building BuildingForm
	Rules    RulesForm
}

func NewVerificationWizard() *VerificationWizard {
	w := &VerificationWizard{}
	w.Wizard = New(
		Step{Name: "payment", Validate: w.validatePayment},
		Step{Name: "building", Validate: w.validateBuilding},
		Step{Name: "rules", Validate: w.validateRules},
	)
	return w
}

func (w *VerificationWizard) AddBank() {
	w.Payment.Banks = append(w.Payment.Banks, BankEntry{})
}

func (w *VerificationWizard) RemoveBank(index int) {
	if index < 0 || index >= len(w.Payment.Banks) {
		return
	}
	w.Payment.Banks = append(w.Payment.Banks[:index], w.Payment.Banks[index+1:]...)
}

// validatePayment requires at least one usable payment method: easypaisa,
// jazzcash, or a bank entry with both name and account number filled in.
// Incomplete bank rows are not an error, they are simply dropped later.
func (w *VerificationWizard) validatePayment() FieldErrors {
	if strings.TrimSpace(w.Payment.Easypaisa) != "" || strings.TrimSpace(w.Payment.Jazzcash) != "" {
		return nil
	}
	for _, bank := range w.Payment.Banks {
		if bank.complete() {
			return nil
		}
	}
	return FieldErrors{"payment": "Provide at least one payment method"}
}

func (w *VerificationWizard) validateBuilding() FieldErrors {
	if len(w.Building.Images) == 0 {
		return FieldErrors{"buildingImages": "Attach at least one image"}
	}
	if len(w.Building.Images) > MaxVerificationImages {
		return FieldErrors{"buildingImages": "At most " + strconv.Itoa(MaxVerificationImages) + " images are allowed"}
	}
	return nil
}

func (w *VerificationWizard) validateRules() FieldErrors {
	if !w.Rules.Accepted {
		return FieldErrors{"rules": "You must accept the hostel rules"}
	}
	return nil
}

// Submit re-validates every step and assembles the payload, dropping bank
// rows that are missing either field.
func (w *VerificationWizard) Submit() (*client.VerificationPayload, FieldErrors) {
	if _, errs := w.ValidateAll(); len(errs) > 0 {
		return nil, errs
	}

	payload := &client.VerificationPayload{
		Easypaisa:     strings.TrimSpace(w.Payment.Easypaisa),
		Jazzcash:      strings.TrimSpace(w.Payment.Jazzcash),
		RulesAccepted: w.Rules.Accepted,
		Images:        w.Building.Images,
	}
	for _, bank := range w.Payment.Banks {
		if !bank.complete() {
			continue
		}
		payload.BankAccounts = append(payload.BankAccounts, domain.BankAccount{
			BankName:      strings.TrimSpace(bank.BankName),
			AccountNumber: strings.TrimSpace(bank.AccountNumber),
			AccountTitle:  strings.TrimSpace(bank.AccountTitle),
		})
	}
	return payload, nil
}
