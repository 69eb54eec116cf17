package utils

import (
	"fmt"
	"strings"

	"github.com/HaZeModsII/website-design/internal/models"
)

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.LineItems {
		size := "—"
		if item.Size != nil {
			size = *item.Size
		}
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%.2f $</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%.2f $</td>
			</tr>`, item.ProductName, size, item.Quantity, item.UnitPrice,
			item.UnitPrice*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Order Confirmation</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #111;">Triple Barrel Racing — Order Confirmation</h2>
		<p>Hi %s,</p>
		<p>Your order <strong>%s</strong> has been confirmed. Thanks for supporting the team!</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Item</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Size</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Unit</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="font-size: 18px;"><strong>Total: %.2f $ CAD</strong></p>
		<p style="color: #666;">Payment reference: %s</p>
	</div>
</body>
</html>`, order.CustomerName, order.ID, itemsHTML, order.TotalAmount, order.PaymentID)
}

// GenerateInquiryNotificationHTML génère le HTML envoyé à l'admin
// quand une demande de contact arrive
func GenerateInquiryNotificationHTML(inquiry models.ContactInquiry) string {
	eventLine := ""
	if inquiry.EventName != nil && *inquiry.EventName != "" {
		eventLine = fmt.Sprintf("<p><strong>Event:</strong> %s</p>", *inquiry.EventName)
	}

	inquiryType := strings.Title(inquiry.InquiryType)

	return fmt.Sprintf(`
	<h2>New Contact Inquiry - Triple Barrel Racing</h2>
	<p><strong>Type:</strong> %s</p>
	<p><strong>Name:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Phone:</strong> %s</p>
	%s
	<p><strong>Message:</strong></p>
	<p>%s</p>`,
		inquiryType, inquiry.Name, inquiry.Email, inquiry.Phone, eventLine, inquiry.Message)
}

// GenerateReceiptHTML génère la page de reçu imprimée en PDF par chromedp.
// Le QR encode la référence de commande pour le retrait sur événement.
func GenerateReceiptHTML(order models.Order, qrBase64 string) string {
	itemsHTML := ""
	for _, item := range order.LineItems {
		label := item.ProductName
		if item.Size != nil {
			label += " (" + *item.Size + ")"
		}
		itemsHTML += fmt.Sprintf(`<tr><td>%s</td><td>%d</td><td>%.2f $</td></tr>`,
			label, item.Quantity, item.UnitPrice*float64(item.Quantity))
	}

	qrHTML := ""
	if qrBase64 != "" {
		qrHTML = fmt.Sprintf(`<img src="%s" alt="QR" width="140" height="140"/>`, qrBase64)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Receipt %s</title></head>
<body style="font-family: Arial, sans-serif; padding: 32px;">
	<h1>Triple Barrel Racing</h1>
	<p>Receipt for order <strong>%s</strong></p>
	<p>%s &lt;%s&gt;</p>
	<table style="width: 100%%; border-collapse: collapse;" border="1" cellpadding="6">
		<thead><tr><th>Item</th><th>Qty</th><th>Total</th></tr></thead>
		<tbody>%s</tbody>
	</table>
	<h3>Total: %.2f $ CAD</h3>
	<p>Payment: %s — Status: %s</p>
	%s
</body>
</html>`, order.ID, order.ID, order.CustomerName, order.CustomerEmail,
		itemsHTML, order.TotalAmount, order.PaymentID, order.Status, qrHTML)
}
