package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"time"

	"movingco/internal/db"
	"movingco/internal/entities"
	"movingco/internal/templates"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendQuoteNotifications emails the full breakdown to the customer and
// sends a short SMS with the quote code. Both run in the background so
// a slow provider never delays the API response.
func (s *SenderService) SendQuoteNotifications(lead *db.QuoteLead, breakdown *entities.QuoteBreakdownResponse) {
	emailData := entities.QuoteEmailData{
		UserName:    lead.UserName,
		Code:        lead.Code,
		ServiceType: serviceTypeLabel(lead.ServiceType, lead.Language),
		Subtotal:    breakdown.Subtotal,
		Tax:         breakdown.Tax,
		Total:       breakdown.Total,
		Fees:        breakdown.Fees,
		Language:    lead.Language,
		CurrentYear: time.Now().Year(),
	}

	var emailSubject, plainTextBody string
	switch lead.Language {
	case "zh":
		emailSubject = fmt.Sprintf("您的搬家报价 - 编号: %s", lead.Code)
		plainTextBody = fmt.Sprintf(
			"您好 %s，\n\n感谢您的咨询，以下是您的报价详情：\n\n"+
				"报价编号：%s\n"+
				"服务类型：%s\n"+
				"小计：$%.2f\n"+
				"税费：$%.2f\n"+
				"总计：$%.2f\n\n"+
				"如有任何问题，请随时联系我们。\n\n"+
				"搬家服务公司",
			emailData.UserName, emailData.Code, emailData.ServiceType,
			emailData.Subtotal, emailData.Tax, emailData.Total,
		)
	default:
		emailSubject = fmt.Sprintf("Your Moving Quote - Code: %s", lead.Code)
		plainTextBody = fmt.Sprintf(
			"Hello %s,\n\nThank you for your enquiry. Here is your quote:\n\n"+
				"Quote Code: %s\n"+
				"Service Type: %s\n"+
				"Subtotal: $%.2f\n"+
				"Tax: $%.2f\n"+
				"Total: $%.2f\n\n"+
				"Feel free to contact us with any questions.\n\n"+
				"Moving Company",
			emailData.UserName, emailData.Code, emailData.ServiceType,
			emailData.Subtotal, emailData.Tax, emailData.Total,
		)
	}

	htmlBody := renderQuoteEmailHTML(emailData)

	go func(toEmail, userName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, userName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("ALERT (async): sending quote email for %s failed: %v", lead.Code, errEmail)
		}
	}(lead.UserEmail, emailData.UserName, emailSubject, plainTextBody, htmlBody)

	if lead.UserPhone != "" {
		go func(toPhone, code, language string, total float64) {
			var smsMessage string
			if language == "zh" {
				smsMessage = fmt.Sprintf("您的搬家报价编号为 %s，总计 $%.2f。详情请查收邮件。", code, total)
			} else {
				smsMessage = fmt.Sprintf("Your moving quote %s totals $%.2f. See your email for details.", code, total)
			}
			if errSMS := SendSMS(toPhone, smsMessage); errSMS != nil {
				log.Printf("ALERT (async): quote %s was stored, but the SMS to %s failed: %v", code, toPhone, errSMS)
			}
		}(lead.UserPhone, lead.Code, lead.Language, emailData.Total)
	}
}

func renderQuoteEmailHTML(data entities.QuoteEmailData) string {
	tmpl, err := template.ParseFS(templates.FS, "quote_email.html")
	if err != nil {
		log.Printf("ALERT: parsing quote email template failed: %v", err)
		return ""
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, data); err != nil {
		log.Printf("ALERT: executing quote email template for %s failed: %v", data.Code, err)
		return ""
	}
	return htmlBodyBuffer.String()
}

func serviceTypeLabel(serviceType, language string) string {
	labels := map[string][2]string{
		"local":     {"同城搬家", "Local Moving"},
		"intercity": {"跨省搬家", "Intercity Moving"},
		"storage":   {"家具存储", "Storage"},
	}
	label, ok := labels[serviceType]
	if !ok {
		return serviceType
	}
	if language == "zh" {
		return label[0]
	}
	return label[1]
}
