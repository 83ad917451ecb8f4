package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

const exportSheet = "Orders"

// handleExportOrders streams an xlsx workbook of the orders in the requested
// inclusive date range; defaults to the last 30 days ending today.
func (s *Server) handleExportOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	to := time.Now()
	if ds := q.Get("to"); ds != "" {
		t, err := time.ParseInLocation(dateLayout, ds, time.Local)
		if err != nil {
			s.writeError(w, r, &domain.ValidationError{Field: "to", Msg: "must be YYYY-MM-DD"})
			return
		}
		to = t
	}
	from := to.AddDate(0, 0, -29)
	if ds := q.Get("from"); ds != "" {
		t, err := time.ParseInLocation(dateLayout, ds, time.Local)
		if err != nil {
			s.writeError(w, r, &domain.ValidationError{Field: "from", Msg: "must be YYYY-MM-DD"})
			return
		}
		from = t
	}

	orders, err := s.orders.ListRange(r.Context(), from, to)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	f, err := ordersWorkbook(orders)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("orders_%s_%s.xlsx", from.Format(dateLayout), to.Format(dateLayout))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write xlsx export")
	}
}

func ordersWorkbook(orders []domain.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	header := []any{"order_id", "created_at", "status", "payment_status", "payment_method", "total", "shipping_city", "shipping_phone"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, err
	}

	var total int64
	for i, o := range orders {
		row := []any{
			o.ID.String(),
			o.CreatedAt.Format(time.RFC3339),
			string(o.Status),
			string(o.PaymentStatus),
			o.PaymentMethod,
			o.Total,
			o.ShippingCity,
			o.ShippingPhone,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
		total += o.Total
	}

	summary := []any{"total", "", "", "", "", total, "", ""}
	cell := fmt.Sprintf("A%d", len(orders)+3)
	if err := f.SetSheetRow(exportSheet, cell, &summary); err != nil {
		return nil, err
	}
	return f, nil
}
