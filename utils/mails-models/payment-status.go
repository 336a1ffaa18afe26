package mailsmodels

import (
	"fmt"
	"time"

	"github.com/aangaziz1996/elanet-sub000/models"
	"github.com/aangaziz1996/elanet-sub000/utils"
)

// PaymentStatusUpdate tells the customer the outcome of a reviewed payment
func PaymentStatusUpdate(email string, customerName string, payment models.Payment) {
	var subject string
	var headline string
	var detail string

	period := fmt.Sprintf("%s s/d %s",
		payment.PeriodStart.Format("2 January 2006"),
		payment.PeriodEnd.Format("2 January 2006"))

	if payment.Status == models.PaymentConfirmed {
		subject = "Subject: Pembayaran ELaNet Dikonfirmasi \r\n"
		headline = "Pembayaran Anda sudah dikonfirmasi"
		detail = fmt.Sprintf("Terima kasih %s, pembayaran sebesar Rp %d untuk periode %s sudah kami terima dan konfirmasi.", customerName, payment.Amount, period)
	} else {
		subject = "Subject: Pembayaran ELaNet Ditolak \r\n"
		headline = "Pembayaran Anda ditolak"
		detail = fmt.Sprintf("Mohon maaf %s, konfirmasi pembayaran sebesar Rp %d untuk periode %s tidak dapat kami verifikasi. Silakan hubungi admin ELaNet.", customerName, payment.Amount, period)
	}

	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1677FF; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">%s</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">%s</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px; color: #888888;">%s</td>
				</tr>
			</tbody>
		</table>
	</div>
`, headline, detail, time.Now().Format("2 January 2006"))

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
