package payment

import (
	"net/url"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// BuildUPIURI builds an upi://pay deep link for the given payee and amount.
// The note ties the payment back to a donation record.
func BuildUPIURI(payeeID, payeeName string, amount float64, note string) string {
	params := url.Values{}
	params.Set("pa", payeeID)
	params.Set("pn", payeeName)
	params.Set("am", strconv.FormatFloat(amount, 'f', 2, 64))
	params.Set("cu", "INR")
	params.Set("tn", note)
	return "upi://pay?" + params.Encode()
}

// QRCodePNG renders the URI as a PNG of the given pixel size.
func QRCodePNG(uri string, size int) ([]byte, error) {
	return qrcode.Encode(uri, qrcode.Medium, size)
}
