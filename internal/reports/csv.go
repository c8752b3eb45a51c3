// Package reports renders the balance overview exports. Both renderers are
// pure reads over the current collections.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"smartleave/internal/domain/leave"
)

// BalancesCSV writes one row per user with the remaining days for every
// catalog type. Column order follows the catalog order.
func BalancesCSV(users []leave.User, types []leave.LeaveTypeDefinition) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Name", "Role"}
	for _, t := range types {
		header = append(header, t.ID)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, u := range users {
		row := []string{u.FullName, string(u.Role)}
		for _, t := range types {
			row = append(row, strconv.Itoa(u.Balance.Days(t.ID)))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
