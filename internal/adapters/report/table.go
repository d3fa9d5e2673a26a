package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
)

var tableHeader = []string{"ID", "FULL NAME", "GENDER", "DATE OF BIRTH", "STATE", "STATUS"}

// StatusLabel は在籍状態の表示名を返します。
func StatusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// WriteTable は印刷用の固定幅一覧を書き出します。total は絞り込み前の件数です。
func WriteTable(w io.Writer, title string, shown []*employee.Employee, total int) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", len([]rune(title)))); err != nil {
			return fmt.Errorf("report: write title: %w", err)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(tableHeader, "\t")); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	count := 0
	for _, e := range shown {
		if e == nil {
			continue
		}
		count++
		row := []string{e.ID, e.FullName, string(e.Gender), e.DateOfBirth, e.State, StatusLabel(e.IsActive)}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("report: write row %s: %w", e.ID, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: flush table: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\nShowing %d of %d employees\n", count, total); err != nil {
		return fmt.Errorf("report: write footer: %w", err)
	}
	return nil
}
