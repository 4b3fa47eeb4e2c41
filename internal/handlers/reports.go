package handlers

import (
	"strconv"

	"github.com/arnold/surgitrack-api/internal/export"
	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/arnold/surgitrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

var progressColumns = []string{"Name", "Role", "Hospital", "Region", "Total Targets", "Achieved", "Progress %"}

func progressSection(rows []models.ProgressRow) export.Section {
	section := export.Section{
		Heading: "Staff Progress",
		Columns: progressColumns,
	}
	for _, row := range rows {
		section.Rows = append(section.Rows, []string{
			row.Name,
			row.Role,
			row.Hospital,
			row.Region,
			strconv.Itoa(row.TotalTargets),
			strconv.Itoa(row.Achieved),
			strconv.FormatFloat(row.ProgressPercent, 'f', 1, 64),
		})
	}
	return section
}

func leaderboardSection(rows []models.LeaderboardRow) export.Section {
	section := export.Section{
		Heading: "Leaderboard",
		Columns: []string{"Rank", "Name", "Role", "Completed", "Total Targets"},
	}
	for _, row := range rows {
		section.Rows = append(section.Rows, []string{
			strconv.Itoa(row.Rank),
			row.Name,
			row.Role,
			strconv.Itoa(row.Completed),
			strconv.Itoa(row.TotalTargets),
		})
	}
	return section
}

func (h *Handler) progressReport() (export.Report, error) {
	progress, err := services.AllStaffProgress(h.DB, "")
	if err != nil {
		return export.Report{}, err
	}
	leaderboard, err := services.Leaderboard(h.DB)
	if err != nil {
		return export.Report{}, err
	}
	return export.Report{
		Title: "Staff Surgery Progress Report",
		Sections: []export.Section{
			progressSection(progress),
			leaderboardSection(leaderboard),
		},
	}, nil
}

// ProgressWorkbook exports the progress and leaderboard tables as xlsx.
func (h *Handler) ProgressWorkbook(c *fiber.Ctx) error {
	report, err := h.progressReport()
	if err != nil {
		return respondError(c, err)
	}
	data, err := export.Workbook(report)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="progress.xlsx"`)
	return c.Send(data)
}

// ProgressDocument exports the same tables as a paginated PDF.
func (h *Handler) ProgressDocument(c *fiber.Ctx) error {
	report, err := h.progressReport()
	if err != nil {
		return respondError(c, err)
	}
	data, err := export.Document(report)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, pdfContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="progress.pdf"`)
	return c.Send(data)
}

// SurgeriesWorkbook exports the raw surgery log as xlsx.
func (h *Handler) SurgeriesWorkbook(c *fiber.Ctx) error {
	var surgeries []models.Surgery
	if err := h.DB.Order("date ASC").Find(&surgeries).Error; err != nil {
		return respondError(c, err)
	}

	// Resolve staff names once instead of per row
	var staffList []models.Staff
	if err := h.DB.Find(&staffList).Error; err != nil {
		return respondError(c, err)
	}
	names := make(map[string]string, len(staffList))
	for _, staff := range staffList {
		names[staff.ID.String()] = staff.Name
	}

	section := export.Section{
		Heading: "Surgery Log",
		Columns: []string{"Date", "Staff", "Type", "Hospital", "Region", "Outcome"},
	}
	for _, s := range surgeries {
		outcome := ""
		if s.Outcome != nil {
			outcome = *s.Outcome
		}
		section.Rows = append(section.Rows, []string{
			s.Date.Format("2006-01-02"),
			names[s.StaffID.String()],
			s.SurgeryType,
			s.Hospital,
			s.Region,
			outcome,
		})
	}

	data, err := export.Workbook(export.Report{
		Title:    "Surgery Log",
		Sections: []export.Section{section},
	})
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="surgeries.xlsx"`)
	return c.Send(data)
}
