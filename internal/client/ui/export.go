package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/atsscan/internal/client/render"
)

// ExportScan writes the HTML rendering of one scan into dir, whatever the
// configured output format is.
func (h *Handlers) ExportScan(ctx context.Context, id, dir string) Instruction {
	scan, err := h.scans.Get(ctx, id)
	if err != nil {
		return h.fail(ctx, "export scan", err, "Failed to load scan details")
	}

	r, err := render.NewHTML()
	if err != nil {
		return h.fail(ctx, "export scan", err, "Export failed")
	}
	body, err := render.String(r, render.ScanDetail, render.NewDetailView(scan))
	if err != nil {
		return h.fail(ctx, "export scan", err, "Export failed")
	}

	path := filepath.Join(dir, exportName(scan.ID))
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return h.fail(ctx, "export scan", fmt.Errorf("write %s: %w", path, err), "Export failed")
	}
	return h.message(KindSuccess, "Exported to "+path+".", "")
}

// exportName keeps ids from escaping the export directory.
func exportName(id string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, id)
	if safe == "" {
		safe = "scan"
	}
	return "scan-" + safe + ".html"
}
