// Package statement renders the operation history as a fixed-width table.
package statement

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KretovDmitry/bankaccount/internal/application/interfaces"
	"github.com/KretovDmitry/bankaccount/internal/domain/entities"
)

const (
	datePattern = "dd-MM-yyyy HH:mm"
	dateLayout  = "02-01-2006 15:04"
	separator   = " | "
)

// Format returns the statement for operations, oldest first.
// Every column is left-justified and padded to its widest cell;
// each line ends with a newline.
func Format(operations []entities.Operation) string {
	amountWidth, balanceWidth := 0, 0
	for _, op := range operations {
		amountWidth = max(amountWidth, len(entities.FormatDecimal(op.Amount)))
		balanceWidth = max(balanceWidth, len(entities.FormatDecimal(op.Balance)))
	}
	// Room for the sign.
	amountWidth++

	var sb strings.Builder

	writeRow(&sb, amountWidth, balanceWidth, "Date", "Amount", "Balance")
	for _, op := range operations {
		writeRow(&sb, amountWidth, balanceWidth,
			op.Timestamp().Format(dateLayout),
			op.Sign()+entities.FormatDecimal(op.Amount),
			entities.FormatDecimal(op.Balance),
		)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, amountWidth, balanceWidth int, date, amount, balance string) {
	sb.WriteString(pad(date, len(datePattern)))
	sb.WriteString(separator)
	sb.WriteString(pad(amount, amountWidth))
	sb.WriteString(separator)
	sb.WriteString(pad(balance, balanceWidth))
	sb.WriteByte('\n')
}

func pad(value string, width int) string {
	return fmt.Sprintf("%-*s", width, value)
}

// TablePrinter writes formatted statements to w.
type TablePrinter struct {
	w io.Writer
}

// NewTablePrinter returns a printer writing to w, or to stdout if w is nil.
func NewTablePrinter(w io.Writer) *TablePrinter {
	if w == nil {
		w = os.Stdout
	}
	return &TablePrinter{w: w}
}

var _ interfaces.StatementPrinter = (*TablePrinter)(nil)

func (p *TablePrinter) PrintStatement(operations []entities.Operation) error {
	_, err := io.WriteString(p.w, Format(operations))
	return err
}
