// Package render produces the standalone HTML estimate document. Rendering
// is deterministic: the reference number and generation time are inputs,
// never generated inside the renderer.
package render

import (
	"fmt"
	"html/template"
	"math/rand"
	"strings"
	"time"

	"servicecalc/internal/domain/entities"
)

// SiteInfo is the operator identity shown in the document header.
type SiteInfo struct {
	Name    string
	URL     string
	Tagline string
}

// EstimateData is the full input to Render. Two identical values (same
// reference, same timestamp) render to byte-identical documents.
type EstimateData struct {
	Reference   string
	GeneratedAt time.Time
	Site        SiteInfo
	Customer    entities.CustomerInfo
	Calculation entities.CalculationResult
	ShowTax     bool
}

// NewReference builds a fallback reference number (date plus a random
// four-digit suffix) for callers that render an estimate before a
// submission id exists.
func NewReference(now time.Time) string {
	return fmt.Sprintf("%s%04d", now.Format("20060102"), 1000+rand.Intn(9000))
}

// Title returns the document title, e.g. "Service Estimate #42".
func (d EstimateData) Title() string {
	return fmt.Sprintf("Service Estimate #%s", d.Reference)
}

func (d EstimateData) DateDisplay() string {
	return d.GeneratedAt.Format("January 2, 2006")
}

func (d EstimateData) TimeDisplay() string {
	return d.GeneratedAt.Format("3:04 pm")
}

// Estimate renders the self-contained HTML document: inline styles only,
// no external resources, suitable for emailing, downloading or printing.
func Estimate(data EstimateData) (string, error) {
	var b strings.Builder
	if err := estimateTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render estimate: %w", err)
	}
	return b.String(), nil
}

var estimateTmpl = template.Must(template.New("estimate").Funcs(template.FuncMap{
	"nl2br": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
	},
}).Parse(estimateHTML))

const estimateHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
            line-height: 1.5;
            color: #333;
            background-color: #f9f9f9;
        }
        .estimate-container {
            width: 100%;
            max-width: 800px;
            margin: 20px auto;
            padding: 20px;
            background-color: #fff;
            box-shadow: 0 2px 10px rgba(0, 0, 0, 0.1);
        }
        .estimate-header {
            text-align: center;
            margin-bottom: 20px;
            padding-bottom: 15px;
            border-bottom: 2px solid #eee;
        }
        .estimate-title { font-size: 24px; margin-bottom: 10px; word-wrap: break-word; }
        .estimate-subtitle { font-size: 14px; color: #666; }
        .estimate-meta {
            display: flex;
            flex-direction: column;
            margin-bottom: 20px;
        }
        @media screen and (min-width: 768px) {
            .estimate-meta { flex-direction: row; justify-content: space-between; }
            .estimate-company, .estimate-customer { flex: 1; }
            .estimate-customer { text-align: right; }
        }
        .estimate-company, .estimate-customer { margin-bottom: 15px; }
        .estimate-meta h3 { font-size: 16px; margin-bottom: 8px; }
        .estimate-meta p { margin: 3px 0; font-size: 14px; color: #666; }
        .estimate-date { margin-bottom: 20px; }
        .estimate-date p { font-size: 14px; color: #666; margin: 5px 0; }
        .estimate-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 20px;
            font-size: 14px;
        }
        .estimate-table th, .estimate-table td {
            padding: 10px;
            text-align: left;
            border-bottom: 1px solid #eee;
            word-break: break-word;
        }
        .estimate-table th { background-color: #f5f5f5; font-weight: 600; }
        .estimate-table tr:last-child td { border-bottom: none; }
        .estimate-totals {
            margin-left: auto;
            width: 100%;
            max-width: 300px;
            margin-bottom: 20px;
        }
        .estimate-total-row {
            display: flex;
            justify-content: space-between;
            padding: 8px 0;
            font-size: 14px;
        }
        .estimate-total-row:not(:last-child) { border-bottom: 1px solid #eee; }
        .estimate-total-label { color: #666; }
        .estimate-total-value { font-weight: 600; }
        .estimate-grand-total {
            font-size: 16px;
            font-weight: 700;
            margin-top: 10px;
            padding-top: 10px;
            border-top: 2px solid #eee;
        }
        .estimate-notes, .customer-message {
            margin-bottom: 20px;
            padding: 15px;
            background-color: #f9f9f9;
            border-radius: 5px;
        }
        .estimate-notes h3, .customer-message h3 { font-size: 16px; margin-bottom: 10px; }
        .estimate-notes p, .customer-message p { font-size: 14px; color: #666; margin-bottom: 8px; }
        .estimate-footer {
            margin-top: 30px;
            padding-top: 15px;
            border-top: 1px solid #eee;
            text-align: center;
            font-size: 12px;
            color: #999;
        }
        @media print {
            body { background-color: #fff; -webkit-print-color-adjust: exact !important; }
            .estimate-container { box-shadow: none; margin: 0; padding: 0; }
        }
    </style>
</head>
<body>
    <div class="estimate-container">
        <div class="estimate-header">
            <h1 class="estimate-title">{{.Title}}</h1>
            <div class="estimate-subtitle">Created on {{.DateDisplay}} at {{.TimeDisplay}}</div>
        </div>

        <div class="estimate-meta">
            <div class="estimate-company">
                <h3>From</h3>
                <p>{{.Site.Name}}</p>
                {{if .Site.URL}}<p>{{.Site.URL}}</p>{{end}}
                {{if .Site.Tagline}}<p>{{.Site.Tagline}}</p>{{end}}
            </div>

            <div class="estimate-customer">
                <h3>To</h3>
                <p>{{.Customer.Name}}</p>
                {{if .Customer.Email}}<p>{{.Customer.Email}}</p>{{end}}
                {{if .Customer.Phone}}<p>{{.Customer.Phone}}</p>{{end}}
            </div>
        </div>

        <div class="estimate-date">
            <p><strong>Reference:</strong> {{.Reference}}</p>
            <p><strong>Date:</strong> {{.DateDisplay}}</p>
        </div>

        <table class="estimate-table">
            <thead>
                <tr>
                    <th>Service</th>
                    <th>Rate</th>
                    <th>Quantity</th>
                    <th>Subtotal</th>
                </tr>
            </thead>
            <tbody>
                {{range .Calculation.Lines}}
                <tr>
                    <td>{{.ServiceName}}</td>
                    <td>{{.RateFormatted}} / {{.UnitSymbol}}</td>
                    <td>{{.Quantity}} {{.UnitSymbol}}</td>
                    <td>{{.SubtotalFormatted}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>

        <div class="estimate-totals">
            <div class="estimate-total-row">
                <div class="estimate-total-label">Subtotal</div>
                <div class="estimate-total-value">{{.Calculation.TotalSubtotalFormatted}}</div>
            </div>

            {{if .ShowTax}}
            <div class="estimate-total-row">
                <div class="estimate-total-label">Tax ({{.Calculation.TaxRate}}%)</div>
                <div class="estimate-total-value">{{.Calculation.TotalTaxFormatted}}</div>
            </div>
            {{end}}

            <div class="estimate-total-row estimate-grand-total">
                <div class="estimate-total-label">Total</div>
                <div class="estimate-total-value">{{.Calculation.GrandTotalFormatted}}</div>
            </div>
        </div>

        {{if .Customer.Message}}
        <div class="customer-message">
            <h3>Customer Message</h3>
            <p>{{nl2br .Customer.Message}}</p>
        </div>
        {{end}}

        <div class="estimate-notes">
            <h3>Notes</h3>
            <p>This is an estimate based on the information provided. Actual prices may vary depending on the specific requirements of the project.</p>
            <p>This estimate is valid for 30 days from the date of issue.</p>
        </div>

        <div class="estimate-footer">
            <p>Generated by {{.Site.Name}} on {{.DateDisplay}} {{.TimeDisplay}}</p>
        </div>
    </div>
</body>
</html>
`
