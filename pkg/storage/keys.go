package storage

const (
	ContentTypePNG = "image/png"
	ContentTypePDF = "application/pdf"
)

func QRObjectName(ticketID string) string {
	return "qr/" + ticketID + ".png"
}

func ExportObjectName(filename string) string {
	return "exports/" + filename
}
