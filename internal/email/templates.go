package email

import (
	"fmt"
	"strings"

	"chicchariot/internal/models"
)

func (s *Service) generateOrderHTML(order *models.Order) string {
	var rows strings.Builder
	for _, line := range order.Items {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>₹%.2f</td></tr>",
			line.Name, line.Quantity, line.Price*float64(line.Quantity),
		))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New order %s</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>New order %s</h2>
    <p><strong>%s</strong><br>%s<br>%s</p>
    <table width="100%%" cellpadding="6" style="border-collapse: collapse;">
        <tr><th align="left">Item</th><th align="left">Qty</th><th align="left">Amount</th></tr>
        %s
    </table>
    <p>
        Subtotal: ₹%.2f<br>
        Shipping: ₹%.2f<br>
        <strong>Total: ₹%.2f</strong>
    </p>
    <p>Payment method: %s</p>
</body>
</html>`,
		order.ID, order.ID,
		order.Customer.FullName, order.Customer.Phone, order.Customer.Address,
		rows.String(),
		order.Subtotal, order.Shipping, order.Total,
		order.PaymentMethod,
	)
}

func (s *Service) generateOrderText(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n\n", order.ID)
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", order.Customer.FullName, order.Customer.Phone, order.Customer.Address)
	for _, line := range order.Items {
		fmt.Fprintf(&b, "%dx %s - ₹%.2f\n", line.Quantity, line.Name, line.Price*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "\nSubtotal: ₹%.2f\nShipping: ₹%.2f\nTotal: ₹%.2f\n", order.Subtotal, order.Shipping, order.Total)
	fmt.Fprintf(&b, "Payment method: %s\n", order.PaymentMethod)
	return b.String()
}
