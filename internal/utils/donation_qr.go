package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// GenerateDonationQR builds an EPC (SEPA credit transfer) QR code for
// a donation by bank transfer, returned as a data URI ready for an
// <img src="..."> tag.
func GenerateDonationQR(iban, bic, name, ref string, amount decimal.Decimal) (string, error) {
	// basic EPC layout
	epc := fmt.Sprintf(`BCD
001
1
SCT
%s
%s
%s
EUR%s
%s`, bic, name, iban, amount.StringFixed(2), ref)

	png, err := qrcode.Encode(epc, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
