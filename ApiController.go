package main

import (
	"errors"
	"github.com/Nami-00/cas/contracts"
	"github.com/gin-gonic/gin"
	"net/http"
	"path"
	"strings"
)

const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const UploadFileField = "file"

const DefaultResultFilename = "cas_lookup_result.xlsx"

type ApiController struct {
	WorkbookProcessor contracts.WorkbookProcessor
	ResultStore       contracts.ResultStore
	OverrideTable     contracts.OverrideTable
	CompoundResolver  contracts.CompoundResolver
}

type DownloadEndpointParams struct {
	LookupId string `uri:"lookup_id" binding:"required"`
}

type CompoundEndpointParams struct {
	CasNumber string `uri:"cas_number" binding:"required"`
}

type UploadResponse struct {
	Id       string                   `json:"id"`
	Filename string                   `json:"filename"`
	Counts   contracts.BatchCounts    `json:"counts"`
	Rows     []contracts.LookupResult `json:"rows"`
}

func NewApiController(
	workbookProcessor contracts.WorkbookProcessor, resultStore contracts.ResultStore,
	overrideTable contracts.OverrideTable, compoundResolver contracts.CompoundResolver,
) *ApiController {
	return &ApiController{
		WorkbookProcessor: workbookProcessor,
		ResultStore:       resultStore,
		OverrideTable:     overrideTable,
		CompoundResolver:  compoundResolver,
	}
}

func (api *ApiController) UploadAction(c *gin.Context) {
	var processed *contracts.ProcessedWorkbook

	fileHeader, err := c.FormFile(UploadFileField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload field `" + UploadFileField + "`: " + err.Error()})
		return
	}

	upload, err := fileHeader.Open()
	if err == nil {
		defer upload.Close()
		processed, err = api.WorkbookProcessor.Process(c.Request.Context(), upload)
	}

	if errors.Is(err, contracts.WorkbookReadError) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		filename := resultFilename(fileHeader.Filename)
		lookupId := api.ResultStore.Put(&contracts.StoredResult{
			Filename: filename,
			Content:  processed.Content,
		})

		c.JSON(http.StatusCreated, UploadResponse{
			Id:       lookupId,
			Filename: filename,
			Counts:   processed.Counts,
			Rows:     processed.Rows,
		})
	}
}

func (api *ApiController) DownloadAction(c *gin.Context) {
	params := DownloadEndpointParams{}
	var result *contracts.StoredResult

	err := c.ShouldBindUri(&params)

	if err == nil {
		var found bool
		result, found = api.ResultStore.Get(params.LookupId)
		if !found {
			err = contracts.ResultNotFoundError
		}
	}

	if errors.Is(err, contracts.ResultNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
		c.Data(http.StatusOK, XlsxContentType, result.Content)
	}
}

func (api *ApiController) GetCompoundAction(c *gin.Context) {
	params := CompoundEndpointParams{}
	var result contracts.LookupResult

	err := c.ShouldBindUri(&params)

	if err == nil {
		var found bool
		result, found = api.OverrideTable.Lookup(params.CasNumber)
		if !found {
			result, err = api.CompoundResolver.Resolve(c.Request.Context(), params.CasNumber)
		}
	}

	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, result)
	}
}

// resultFilename keeps the uploaded name recognizable in the download prompt.
// Browsers may send a full client path, so strip directories either way.
func resultFilename(uploadFilename string) string {
	base := path.Base(strings.ReplaceAll(uploadFilename, `\`, "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.ReplaceAll(base, `"`, "")

	if base == "" || base == "." {
		return DefaultResultFilename
	}

	return base + "_result.xlsx"
}
