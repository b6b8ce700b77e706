package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/petros-hq/petros-api/internal/application/service"
	"github.com/petros-hq/petros-api/internal/domain/enum"
	"github.com/petros-hq/petros-api/internal/presentation/http/dto/response"
	"github.com/petros-hq/petros-api/pkg/pagination"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService  *service.CustomerService
	paymentService   *service.PaymentService
	saleService      *service.SaleService
	statementService *service.StatementService
	reportService    *service.ReportService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	customerService *service.CustomerService,
	paymentService *service.PaymentService,
	saleService *service.SaleService,
	statementService *service.StatementService,
	reportService *service.ReportService,
) *CustomerHandler {
	return &CustomerHandler{
		customerService:  customerService,
		paymentService:   paymentService,
		saleService:      saleService,
		statementService: statementService,
		reportService:    reportService,
	}
}

type createCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone"`
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created", customer)
}

// List handles GET /customers. With a cursor parameter it pages by cursor,
// otherwise by page number.
func (h *CustomerHandler) List(c *gin.Context) {
	search := c.Query("search")

	if cursor, ok := c.GetQuery("cursor"); ok || c.Query("mode") == "cursor" {
		var params pagination.CursorParams
		if err := c.ShouldBindQuery(&params); err != nil {
			response.BadRequest(c, "Invalid query parameters")
			return
		}
		params.Cursor = cursor

		customers, meta, err := h.customerService.ListCustomersWithCursor(c.Request.Context(), &params, search)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.SuccessWithPagination(c, 200, "Customers retrieved", customers, meta)
		return
	}

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	customers, meta, err := h.customerService.ListCustomers(c.Request.Context(), &params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved", customers, meta)
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved", customer)
}

type updateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", customer)
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted", nil)
}

// ListPayments handles GET /customers/:id/payments
func (h *CustomerHandler) ListPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	payments, err := h.paymentService.ListPaymentsByCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved", payments)
}

type recordCustomerPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method" binding:"required"`
	Note   *string `json:"note"`
}

// CreatePayment handles POST /customers/:id/payments
func (h *CustomerHandler) CreatePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req recordCustomerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	method := enum.PaymentMethod(req.Method)
	if !method.Valid() {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), &service.CreatePaymentInput{
		UserID:     *userID,
		CustomerID: id,
		Amount:     req.Amount,
		Note:       req.Note,
		Method:     method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded", payment)
}

// ListSales handles GET /customers/:id/sales
func (h *CustomerHandler) ListSales(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	sales, err := h.saleService.ListSalesByCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved", sales)
}

// Statement handles GET /customers/:id/statement with optional from/to
// query parameters in YYYY-MM-DD form.
func (h *CustomerHandler) Statement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}
	if to != nil {
		// Make the end date inclusive of the whole day.
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	statement, err := h.statementService.GetStatement(c.Request.Context(), id, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statement retrieved", statement)
}

// StatementPDF handles GET /customers/:id/statement/pdf, returning the
// statement as a PDF attachment.
func (h *CustomerHandler) StatementPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}
	if to != nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	statement, err := h.statementService.GetStatement(c.Request.Context(), id, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	rendered, err := h.reportService.Render(c.Request.Context(), h.statementService.Table(statement), "pdf")
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("statement-%s.%s", time.Now().Format("20060102"), rendered.Extension)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, rendered.ContentType, rendered.Data)
}

func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
