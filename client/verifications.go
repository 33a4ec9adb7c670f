package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"hostelhub_client/domain"
)

// VerificationPayload is the manager's ownership/payment submission. The
// wizard guarantees at least one payment method and explicit rules
// acceptance before this is built.
type VerificationPayload struct {
	Easypaisa     string
	Jazzcash      string
	BankAccounts  []domain.BankAccount
	RulesAccepted bool
	Images        []FilePart
}

func (c *Client) SubmitVerification(ctx context.Context, payload VerificationPayload) error {
	fields := map[string]string{
		"rulesAccepted": strconv.FormatBool(payload.RulesAccepted),
	}
	if payload.Easypaisa != "" {
		fields["easypaisa"] = payload.Easypaisa
	}
	if payload.Jazzcash != "" {
		fields["jazzcash"] = payload.Jazzcash
	}
	for i, bank := range payload.BankAccounts {
		prefix := fmt.Sprintf("bankAccounts[%d]", i)
		fields[prefix+"[bankName]"] = bank.BankName
		fields[prefix+"[accountNumber]"] = bank.AccountNumber
		if bank.AccountTitle != "" {
			fields[prefix+"[accountTitle]"] = bank.AccountTitle
		}
	}

	images := make([]FilePart, 0, len(payload.Images))
	for _, img := range payload.Images {
		img.Field = "buildingImages"
		images = append(images, img)
	}

	body, contentType, err := encodeMultipart(fields, images)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, "/verifications", contentType, body)
	return err
}

func (c *Client) MyVerification(ctx context.Context) (*domain.Verification, error) {
	var verification domain.Verification
	if err := c.getJSON(ctx, "/verifications/my", &verification); err != nil {
		return nil, err
	}
	return &verification, nil
}
