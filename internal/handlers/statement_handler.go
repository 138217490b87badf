package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"bge-backend/internal/services"

	"github.com/gorilla/mux"
)

type StatementHandler struct {
	Service *services.StatementService
}

func NewStatementHandler(s *services.StatementService) *StatementHandler {
	return &StatementHandler{Service: s}
}

func (h *StatementHandler) CustomerStatement(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	pdf, err := h.Service.GenerateStatement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement_%d.pdf", id))
	w.Write(pdf)
}

func (h *StatementHandler) ExpenseReport(w http.ResponseWriter, r *http.Request) {
	filter := expenseFilterFromQuery(r)

	pdf, err := h.Service.GenerateExpenseReport(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=expense_report.pdf")
	w.Write(pdf)
}
