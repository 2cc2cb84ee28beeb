package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/lshigami/QuizMe/internal/dto"
	"github.com/lshigami/QuizMe/internal/model"
)

// PDFService renders an assembled report as a downloadable PDF. It is a
// pure rendering function over the report data.
type PDFService interface {
	Render(report *dto.ReportDTO) ([]byte, error)
}

type pdfService struct{}

func NewPDFService() PDFService {
	return &pdfService{}
}

func (s *pdfService) Render(report *dto.ReportDTO) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(report.QuizTitle, true)
	pdf.AliasNbPages("")
	pdf.SetAutoPageBreak(true, 25)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 6, "QuizMe", "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, report.QuizTitle, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Participant: %s", report.Participation.ParticipantName), "", 1, "L", false, 0, "")

	score := 0
	if report.Participation.Score != nil {
		score = *report.Participation.Score
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Score: %d/%d (%.0f%%)", score, report.TotalQuestions, report.Percentage), "", 1, "L", false, 0, "")

	timeSpent := "not available"
	if report.Participation.TimeSpent != nil {
		timeSpent = formatTimeSpent(*report.Participation.TimeSpent)
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Time spent: %s", timeSpent), "", 1, "L", false, 0, "")

	finished := time.Now()
	if report.Participation.FinishedAt != nil {
		finished = *report.Participation.FinishedAt
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Date: %s", finished.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetDrawColor(200, 200, 200)
	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.Line(left, y, pageWidth-right, y)
	pdf.Ln(6)

	for i, entry := range report.PerQuestion {
		s.renderEntry(pdf, i+1, entry)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("rendering results PDF: %w", err)
	}
	return out.Bytes(), nil
}

func (s *pdfService) renderEntry(pdf *gofpdf.Fpdf, number int, entry dto.ReportEntryDTO) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Question %d: %s", number, entry.Question.Text), "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	answer := entry.Response.Answer
	if answer == "" {
		answer = "not answered"
	}
	pdf.MultiCell(0, 5, fmt.Sprintf("Your answer: %s", answer), "", "L", false)

	if entry.Question.Type == model.QuestionTypeEssay {
		accepted := ""
		for i, a := range entry.Question.AcceptedAnswers {
			if i > 0 {
				accepted += ", "
			}
			accepted += a
		}
		pdf.MultiCell(0, 5, fmt.Sprintf("Accepted answers include: %s", accepted), "", "L", false)
	} else {
		pdf.MultiCell(0, 5, fmt.Sprintf("Correct answer: %s", entry.Question.CorrectAnswer), "", "L", false)
	}

	verdict := "incorrect"
	if entry.Response.IsCorrect != nil && *entry.Response.IsCorrect {
		verdict = "correct"
	}
	pdf.MultiCell(0, 5, fmt.Sprintf("(%s)", verdict), "", "L", false)

	if entry.Response.ChallengeReason != nil && *entry.Response.ChallengeReason != "" {
		pdf.MultiCell(0, 5, fmt.Sprintf("Challenged: %s", *entry.Response.ChallengeReason), "", "L", false)
	}
	pdf.Ln(6)
}

func formatTimeSpent(timeInSeconds int) string {
	minutes := timeInSeconds / 60
	seconds := timeInSeconds % 60
	return fmt.Sprintf("%d min %d sec", minutes, seconds)
}
