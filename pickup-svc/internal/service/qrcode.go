package service

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// PickupQRGenerator encodes the link staff scan at the counter.
type PickupQRGenerator struct {
	BaseURL string
}

func (g PickupQRGenerator) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(PickupLink(g.BaseURL, orderID), qrcode.Medium, 256)
}

func PickupLink(baseURL, orderID string) string {
	return strings.TrimRight(baseURL, "/") + "/pickup?order_id=" + orderID
}
