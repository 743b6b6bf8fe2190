package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
)

// exportPNG writes the composed board at full surface resolution.
func exportPNG(s *Session, filename string) error {
	dc := gg.NewContextForRGBA(s.Frame())
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("export %s: %w", filename, err)
	}
	return nil
}

func exportFilename(now time.Time) string {
	return fmt.Sprintf("pitchboard-%s.png", now.Format("20060102-150405"))
}

// exportBoard saves the board into the save directory and puts the path on
// the clipboard. A clipboard failure does not fail the export.
func (m *model) exportBoard() {
	path := m.config.GetSavePath(exportFilename(m.now()))
	if err := exportPNG(m.session, path); err != nil {
		m.log.Error().Err(err).Msg("export failed")
		m.errorMessage = err.Error()
		return
	}
	m.log.Info().Str("path", path).Msg("board exported")
	if err := clipboard.WriteAll(path); err != nil {
		m.log.Warn().Err(err).Msg("copy export path")
		m.successMessage = fmt.Sprintf("Saved %s", path)
		return
	}
	m.successMessage = fmt.Sprintf("Saved %s (path copied)", path)
}
