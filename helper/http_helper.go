package helper

import (
	"math"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"

	"github.com/zealr3/stackit-qna/models"
)

const (
	textError             = `error`
	textOk                = `ok`
	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeForbiddenError    = 403
	codeNotFound          = 404
	codeConflict          = 409
	codeValidationError   = 422
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  string
	Data     interface{}
	Code     int // not the http code
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper wires the validator with english translations so field
// errors come back readable.
func NewHTTPHelper() *HTTPHelper {
	validate := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps domain error types to HTTP status codes.
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusOK
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorUnauthorized":
			statusCode = http.StatusUnauthorized
		case "models.ErrorForbidden":
			statusCode = http.StatusForbidden
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		case "models.ErrorConflict":
			statusCode = http.StatusConflict
		case "models.ErrorValidation":
			statusCode = http.StatusBadRequest
		default:
			statusCode = http.StatusInternalServerError
		}
	}

	return statusCode
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, codeBadRequestError, `badRequest`)

	return u.SendResponse(res)
}

// SendValidationError ...
// Send validation error response to consumers; one message list per field.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    `validationError`,
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendFieldErrors sends domain-level field messages (title too short,
// too many tags, ...) in the same shape SendValidationError uses.
func (u *HTTPHelper) SendFieldErrors(c *gin.Context, fields map[string]string) error {
	errorResponse := map[string][]string{}
	for field, msg := range fields {
		errorResponse[field] = append(errorResponse[field], msg)
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    `validationError`,
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendDomainError routes a service error to the right response based on
// its type. Validation errors keep their field breakdown.
func (u *HTTPHelper) SendDomainError(c *gin.Context, err error) error {
	if verr, ok := err.(models.ErrorValidation); ok {
		return u.SendFieldErrors(c, verr.Fields)
	}

	status := u.GetStatusCode(err)
	var code int
	var codeType string
	switch status {
	case http.StatusUnauthorized:
		code, codeType = codeUnauthorizedError, `unAuthorized`
	case http.StatusForbidden:
		code, codeType = codeForbiddenError, `forbidden`
	case http.StatusNotFound:
		code, codeType = codeNotFound, `notFound`
	case http.StatusConflict:
		code, codeType = codeConflict, `conflict`
	default:
		code, codeType = codeBadRequestError, `badRequest`
	}

	c.JSON(status, map[string]interface{}{
		"code":         code,
		"code_type":    codeType,
		"code_message": err.Error(),
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendCreated sends a success envelope with a 201 status.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	if len(message) == 0 {
		message = `success`
	}
	c.JSON(http.StatusCreated, map[string]interface{}{
		"code":         codeSuccess,
		"code_type":    `success`,
		"code_message": message,
		"data":         data,
	})
	return nil
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	var resCode int
	switch res.Code {
	case codeSuccess:
		resCode = http.StatusOK
	case codeUnauthorizedError:
		resCode = http.StatusUnauthorized
	case codeForbiddenError:
		resCode = http.StatusForbidden
	case codeNotFound:
		resCode = http.StatusNotFound
	case codeConflict:
		resCode = http.StatusConflict
	default:
		resCode = http.StatusBadRequest
	}

	res.C.JSON(resCode, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// GeneratePaging builds the pagination block for list responses.
func (u *HTTPHelper) GeneratePaging(page, limit, totalRecord int) map[string]interface{} {
	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))
	if totalPages < 1 {
		totalPages = 1
	}

	return map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
	}
}
