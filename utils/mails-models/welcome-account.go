package mailsmodels

import (
	"fmt"

	"github.com/aangaziz1996/elanet-sub000/utils"
)

// WelcomeAccount notifies a customer that their portal login was created
func WelcomeAccount(email string, customerName string) {
	subject := "Subject: Akun Pelanggan ELaNet \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1677FF; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Selamat datang di ELaNet</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Halo %s, akun pelanggan Anda sudah aktif. Silakan masuk ke portal pelanggan dengan email ini untuk melihat status tagihan dan mengirim konfirmasi pembayaran.</td>
				</tr>
			</tbody>
		</table>
	</div>
`, customerName)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
