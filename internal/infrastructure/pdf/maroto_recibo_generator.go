// Package pdf implementa la generación del comprobante de consumo en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Cuenta + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + mesa + tipo de cuenta + estado            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                               │
//	│  FOOTER: leyenda de cortesía                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"

	"github.com/lastonitas/cerveceria-api/internal/application/cuentas"
	"github.com/lastonitas/cerveceria-api/internal/domain/entity"
)

var _ cuentas.GeneradorRecibo = (*MarotoReciboGenerator)(nil)

var (
	colorPrimario = &props.Color{Red: 146, Green: 64, Blue: 14}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReciboGenerator implementa cuentas.GeneradorRecibo usando Maroto v2.
type MarotoReciboGenerator struct {
	nombreNegocio string
}

// NewMarotoReciboGenerator construye el generador con el nombre del negocio
// que encabeza el comprobante.
func NewMarotoReciboGenerator(nombreNegocio string) *MarotoReciboGenerator {
	return &MarotoReciboGenerator{nombreNegocio: nombreNegocio}
}

// GenerarRecibo genera el comprobante de la cuenta y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerarRecibo(
	_ context.Context,
	cuenta *entity.Cuenta,
	detalles []*entity.CuentaDetalle,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de consumo", true).
		WithAuthor(g.nombreNegocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.encabezado(cuenta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(clienteRow(cuenta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(tablaHeaderRow())
	for _, r := range tablaDetalleRows(detalles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(totalRow(cuenta.Total))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Gracias por su visita. Este comprobante no es un documento fiscal.",
			props.Text{Size: 7, Align: align.Center, Color: colorGris, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// encabezado: nombre del negocio (izq) y número de cuenta + fecha (der).
func (g *MarotoReciboGenerator) encabezado(cuenta *entity.Cuenta) core.Row {
	fecha := cuenta.FechaCreado.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.nombreNegocio, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("Comprobante de consumo", props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("CUENTA #%d", cuenta.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGris,
			}),
		),
	)
}

// clienteRow: cliente, mesa, tipo de cuenta y estado.
func clienteRow(cuenta *entity.Cuenta) core.Row {
	mesa := "Para llevar"
	if cuenta.NumeroMesa != nil {
		mesa = fmt.Sprintf("Mesa %d", *cuenta.NumeroMesa)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1,
			}),
			text.New(cuenta.Cliente, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s   |   Tipo: %s   |   Estado: %s",
				mesa, cuenta.TipoCuenta, cuenta.Estado,
			), props.Text{Size: 8, Top: 12, Color: colorGris}),
		),
	)
}

// tablaHeaderRow: cabecera de la tabla de consumo.
func tablaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("P.Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tablaDetalleRows: una fila por línea de consumo, con el precio cobrado
// (snapshot, con promoción ya aplicada si hubo).
func tablaDetalleRows(detalles []*entity.CuentaDetalle) []core.Row {
	result := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		cantidad := decimal.NewFromInt(int64(d.CantidadVendida))
		subtotal := d.PrecioVenta.Mul(cantidad)
		producto := d.Descripcion
		if d.Presentacion != "" {
			producto = fmt.Sprintf("%s (%s)", d.Descripcion, d.Presentacion)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.CantidadVendida),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				producto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+d.PrecioVenta.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total a pagar alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL A PAGAR:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimario, Right: 1, Top: 2,
		})),
	)
}
