package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
)

type normalizedSubmission struct {
	Owner    string `json:"owner"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Product  string `json:"product"`
	Quantity int32  `json:"quantity"`
	Message  string `json:"message"`
}

// FingerprintSubmission builds a deterministic hash of a submission so a
// reused idempotency key can be matched against the payload it accepted.
// The key itself is excluded from the hash.
func FingerprintSubmission(owner string, sub ports.Submission) (string, error) {
	normalized := normalizedSubmission{
		Owner:    strings.TrimSpace(owner),
		Date:     strings.TrimSpace(sub.Date),
		Time:     sub.Time,
		Location: sub.Location,
		Product:  sub.Product,
		Quantity: sub.Quantity,
		Message:  strings.TrimSpace(sub.Message),
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
