// Package pdf genera la ficha imprimible de acceso de una institución recién aprovisionada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la institución  │  Esquema               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ACCESO: Dominio / N° de registro / Contraseña inicial      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR del dominio + vigencia del primer login                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/application/provisioning"
)

var _ provisioning.CredentialsRenderer = (*CredentialsSheet)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CredentialsSheet implementa provisioning.CredentialsRenderer usando Maroto v2.
type CredentialsSheet struct{}

// NewCredentialsSheet construye el generador.
func NewCredentialsSheet() *CredentialsSheet { return &CredentialsSheet{} }

// RenderCredentials genera el PDF y devuelve sus bytes.
func (g *CredentialsSheet) RenderCredentials(c *dto.CredentialsResponse) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("pdf: credenciales vacías")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Credenciales de acceso - "+c.InstitutionName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(c))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(accessRows(c)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRows(c)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(c *dto.CredentialsResponse) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(c.InstitutionName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Ficha de acceso del administrador", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("ESQUEMA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(c.SchemaName, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func field(label, value string) core.Row {
	return row.New(9).Add(
		col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorGray})),
		col.New(8).Add(text.New(value, props.Text{Size: 11, Top: 1.5})),
	)
}

func accessRows(c *dto.CredentialsResponse) []core.Row {
	password := "(ya fue cambiada)"
	if c.DefaultPassword != "" {
		password = c.DefaultPassword
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("DATOS DE ACCESO", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}))),
		field("Dominio", nonEmpty(c.Domain, "-")),
		field("N° de registro", c.RegistrationNumber),
		field("Contraseña inicial", password),
	}
}

func footerRows(c *dto.CredentialsResponse) []core.Row {
	notice := "El primer ingreso con la contraseña inicial ya fue utilizado."
	if c.BootstrapPending {
		notice = "Cambie la contraseña en el primer ingreso."
		if c.BootstrapExpiresAt != nil {
			notice += " Válida hasta " + c.BootstrapExpiresAt.UTC().Format("02/01/2006 15:04") + " UTC."
		}
	}
	if c.Domain == "" {
		return []core.Row{row.New(10).Add(col.New(12).Add(
			text.New(notice, props.Text{Size: 9, Top: 3, Color: colorGray}),
		))}
	}
	return []core.Row{row.New(45).Add(
		col.New(4).Add(code.NewQr("https://"+c.Domain, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Escanee el código para abrir el campus.", props.Text{Size: 9, Top: 4, Left: 3, Color: colorGray}),
			text.New(notice, props.Text{Style: fontstyle.Bold, Size: 10, Top: 18, Left: 3, Color: colorPrimary}),
		),
	)}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
