package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"servicecalc/internal/domain/entities"
	"servicecalc/internal/render"
	"servicecalc/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrSubmissionFailed = errors.New("failed to create submission")

// InquiryResult is returned to the visitor after a successful submission.
type InquiryResult struct {
	SubmissionID string
	HTML         string
}

// IInquiryUseCase orchestrates the visitor-facing flow: price the request,
// persist a submission snapshot, render the estimate document and notify
// by email.
//
// The submission write is the point of no return. Anything after it
// (estimate persistence, email dispatch) is best-effort: failures are
// logged and never surfaced, and nothing is rolled back.

type IInquiryUseCase interface {
	SubmitInquiry(ctx context.Context, requests []entities.LineItemRequest, customer entities.CustomerInfo) (InquiryResult, error)
	RenderEstimate(ctx context.Context, requests []entities.LineItemRequest, customer entities.CustomerInfo) (string, error)
}

type InquiryUseCase struct {
	calculator  ICalculatorUseCase
	submissions interfaces.ISubmissionRepository
	settings    interfaces.ISettingsStore
	mailer      interfaces.IMailSender

	now func() time.Time
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(calculator ICalculatorUseCase, submissions interfaces.ISubmissionRepository, settings interfaces.ISettingsStore, mailer interfaces.IMailSender) *InquiryUseCase {
	return &InquiryUseCase{
		calculator:  calculator,
		submissions: submissions,
		settings:    settings,
		mailer:      mailer,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *InquiryUseCase) SubmitInquiry(ctx context.Context, requests []entities.LineItemRequest, customer entities.CustomerInfo) (InquiryResult, error) {
	cfg, err := u.calculator.LoadConfig(ctx)
	if err != nil {
		return InquiryResult{}, err
	}

	calculation, err := u.calculator.ComputeTotal(ctx, cfg, requests)
	if err != nil {
		return InquiryResult{}, err
	}

	sanitized := SanitizeCustomerInfo(customer)
	now := u.now()

	created, err := u.submissions.Create(ctx, entities.Submission{
		ID:          uuid.NewString(),
		Calculation: calculation,
		Customer:    sanitized,
		Status:      entities.SubmissionStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return InquiryResult{}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	site := u.loadSiteInfo(ctx)

	html, err := render.Estimate(render.EstimateData{
		Reference:   created.ID,
		GeneratedAt: now,
		Site:        site,
		Customer:    sanitized,
		Calculation: calculation,
		ShowTax:     cfg.TaxShown(),
	})
	if err != nil {
		log.Printf("failed to render estimate for submission %s: %v", created.ID, err)
	} else if err := u.submissions.SetHTMLEstimate(ctx, created.ID, html); err != nil {
		log.Printf("failed to store estimate for submission %s: %v", created.ID, err)
	}

	if enabled, _ := u.settings.Get(ctx, SettingEmailNotifications, "yes"); enabled == "yes" {
		u.sendNotifications(ctx, created.ID, site.Name, calculation, sanitized)
	}

	return InquiryResult{SubmissionID: created.ID, HTML: html}, nil
}

// RenderEstimate prices the request and renders the document without
// persisting anything; used for download/print before an inquiry is
// submitted. The reference is a date-based placeholder since no submission
// id exists yet.
func (u *InquiryUseCase) RenderEstimate(ctx context.Context, requests []entities.LineItemRequest, customer entities.CustomerInfo) (string, error) {
	cfg, err := u.calculator.LoadConfig(ctx)
	if err != nil {
		return "", err
	}

	calculation, err := u.calculator.ComputeTotal(ctx, cfg, requests)
	if err != nil {
		return "", err
	}

	now := u.now()
	return render.Estimate(render.EstimateData{
		Reference:   render.NewReference(now),
		GeneratedAt: now,
		Site:        u.loadSiteInfo(ctx),
		Customer:    SanitizeCustomerInfo(customer),
		Calculation: calculation,
		ShowTax:     cfg.TaxShown(),
	})
}

func (u *InquiryUseCase) loadSiteInfo(ctx context.Context) render.SiteInfo {
	name, err := u.settings.Get(ctx, SettingSiteName, defaultSiteName)
	if err != nil {
		log.Printf("failed to load site settings: %v", err)
		return render.SiteInfo{Name: defaultSiteName}
	}
	url, _ := u.settings.Get(ctx, SettingSiteURL, "")
	tagline, _ := u.settings.Get(ctx, SettingSiteTagline, "")
	return render.SiteInfo{Name: name, URL: url, Tagline: tagline}
}

// sendNotifications dispatches the operator summary and, when the customer
// left an address, a confirmation. Send errors are logged and swallowed.
func (u *InquiryUseCase) sendNotifications(ctx context.Context, submissionID, siteName string, calculation entities.CalculationResult, customer entities.CustomerInfo) {
	adminEmail, err := u.settings.Get(ctx, SettingAdminEmail, "")
	if err != nil {
		log.Printf("failed to load admin email: %v", err)
		adminEmail = ""
	}

	if adminEmail != "" {
		subject := fmt.Sprintf("[%s] New Service Estimate Request #%s", siteName, submissionID)
		body := operatorEmailBody(submissionID, u.now(), calculation, customer)

		headers := map[string]string{}
		if customer.Email != "" {
			headers["Reply-To"] = fmt.Sprintf("%s <%s>", customer.Name, customer.Email)
		}

		if err := u.mailer.Send(ctx, adminEmail, subject, body, headers); err != nil {
			log.Printf("failed to send operator notification for submission %s: %v", submissionID, err)
		}
	}

	if customer.Email != "" {
		subject := fmt.Sprintf("[%s] Your Service Estimate Request", siteName)
		body := customerEmailBody(siteName, customer.Name, calculation)

		if err := u.mailer.Send(ctx, customer.Email, subject, body, nil); err != nil {
			log.Printf("failed to send customer confirmation for submission %s: %v", submissionID, err)
		}
	}
}

func operatorEmailBody(submissionID string, now time.Time, calculation entities.CalculationResult, customer entities.CustomerInfo) string {
	var b strings.Builder

	b.WriteString("A new service estimate request has been submitted.\n\n")
	fmt.Fprintf(&b, "Submission ID: %s\n", submissionID)
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("Customer Information:\n")
	fmt.Fprintf(&b, "Name: %s\n", customer.Name)
	if customer.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", customer.Email)
	}
	if customer.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", customer.Phone)
	}
	if customer.Message != "" {
		fmt.Fprintf(&b, "Message:\n%s\n", customer.Message)
	}

	writeEstimateSummary(&b, calculation)
	return b.String()
}

func customerEmailBody(siteName, customerName string, calculation entities.CalculationResult) string {
	var b strings.Builder

	name := customerName
	if name == "" {
		name = "customer"
	}
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	b.WriteString("Thank you for your estimate request. We have received your inquiry and will respond to you shortly.\n")

	writeEstimateSummary(&b, calculation)

	b.WriteString("Please note that this is an automated estimate based on the information you provided. Final prices may vary depending on specific project requirements.\n\n")
	b.WriteString("We will contact you soon to discuss your project in more detail.\n\n")
	b.WriteString("Best regards,\n")
	b.WriteString(siteName + "\n")
	return b.String()
}

func writeEstimateSummary(b *strings.Builder, calculation entities.CalculationResult) {
	b.WriteString("\nEstimate Summary:\n")
	for _, line := range calculation.Lines {
		fmt.Fprintf(b, "%s (%s %s): %s\n", line.ServiceName, line.Quantity, line.UnitSymbol, line.SubtotalFormatted)
	}
	fmt.Fprintf(b, "\nSubtotal: %s\n", calculation.TotalSubtotalFormatted)
	fmt.Fprintf(b, "Tax: %s\n", calculation.TotalTaxFormatted)
	fmt.Fprintf(b, "Grand Total: %s\n\n", calculation.GrandTotalFormatted)
}
