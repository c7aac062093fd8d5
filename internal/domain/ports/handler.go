package ports

import "github.com/Tomas-vilte/MateChangeset/internal/domain/models"

// ReportHandler presenta el reporte de una corrida al usuario
type ReportHandler interface {
	HandleReport(report *models.Report) error
}
