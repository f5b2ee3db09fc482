package service

import (
	"github.com/aakb/rasid-api/pkg/printer"
)

// PrinterService reports on the thermal receipt printer.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	dotsWidth   int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string, dotsWidth int) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
		dotsWidth:   dotsWidth,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	DotsWidth  int    `json:"dots_width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	configured := s.printerType != "none" && s.printerType != ""
	return &PrinterStatus{
		Configured: configured,
		Connected:  configured && s.printer.IsConnected(),
		Type:       s.printerType,
		DotsWidth:  s.dotsWidth,
	}
}
