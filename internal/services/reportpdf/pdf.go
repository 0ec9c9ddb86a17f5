package reportpdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ulink-doctor/internal/domain/model"
	"ulink-doctor/internal/platform/hash"

	"github.com/phpdave11/gofpdf"
)

// 校验报告 PDF 导出。
//
// 用途：把一次校验结果固化成可归档、可转发的文件（发布前检查单、
// 提审附件等）。控制台与 dashboard 渲染不依赖本包。

// Result 是一次 PDF 导出的结果。
type Result struct {
	PDFPath     string `json:"pdf_path"`
	PDFSHA256   string `json:"pdf_sha256"`
	GeneratedAt int64  `json:"generated_at"`
}

// Export 将报告渲染为 PDF 并写入 outDir。
// 文件名含项目 ID 与时间戳，重复导出互不覆盖。
func Export(rep model.Report, outDir string) (*Result, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir report dir: %w", err)
	}

	now := time.Now().Unix()
	name := rep.ProjectID
	if name == "" {
		name = "project"
	}
	pdfPath := filepath.Join(outDir, fmt.Sprintf("%s_verify_%d.pdf", name, now))

	pdf := buildPDF(rep)
	if err := pdf.OutputFileAndClose(pdfPath); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	sum, _, err := hash.File(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("sha256 pdf: %w", err)
	}

	return &Result{PDFPath: pdfPath, PDFSHA256: sum, GeneratedAt: now}, nil
}

func buildPDF(rep model.Report) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 14)
	pdf.SetTitle("ULink Doctor - Verification Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "ULink Deep Link Verification Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at: %s", rep.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC")), "", 1, "L", false, 0, "")
	if rep.ProjectID != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Project: %s", rep.ProjectID), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Platform: %s", rep.Kind), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	sectionTitle(pdf, "1. Summary")
	verdict := "PASSED"
	if rep.HasErrors() {
		verdict = "FAILED"
	}
	kv(pdf, "Verdict", verdict)
	kv(pdf, "Success", fmt.Sprintf("%d", rep.SuccessCount))
	kv(pdf, "Warnings", fmt.Sprintf("%d", rep.WarningCount))
	kv(pdf, "Errors", fmt.Sprintf("%d", rep.ErrorCount))
	kv(pdf, "Skipped", fmt.Sprintf("%d", rep.SkippedCount))
	pdf.Ln(2)

	sectionTitle(pdf, "2. Findings")
	for i, f := range rep.Findings {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.MultiCell(0, 5.5, fmt.Sprintf("%d. [%s] %s", i+1, strings.ToUpper(string(f.Severity)), f.CheckName), "", "L", false)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(0, 4.5, f.Message, "", "L", false)
		if f.Remediation != "" {
			pdf.SetTextColor(120, 80, 0)
			pdf.MultiCell(0, 4.5, "Fix: "+f.Remediation, "", "L", false)
		}
		pdf.Ln(1)
	}

	return pdf
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func kv(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(42, 5, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(0, 5, value, "", "L", false)
}
