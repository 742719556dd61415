package main

import (
	"github.com/Nami-00/cas/contracts"
	"github.com/gin-gonic/gin"
	"net/http"
)

const ApiVersion = "v1"

const lookupsPath = "lookups"
const compoundsPath = "compounds"

const uploadPageHtml = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>CAS batch lookup</title>
</head>
<body>
<h1>CAS batch lookup</h1>
<p>Upload an .xlsx file with CAS registry numbers in the first column.
The first row is treated as a header. The service appends molecular
formula and molecular weight columns and offers the result back as a
download. Rows it cannot resolve stay blank.</p>
<form method="post" action="/api/v1/lookups" enctype="multipart/form-data">
    <input type="file" name="file" accept=".xlsx" required>
    <button type="submit">Upload</button>
</form>
</body>
</html>`

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/"+lookupsPath, controller.UploadAction)
	apiRouterGroup.GET("/"+lookupsPath+"/:lookup_id/file", controller.DownloadAction)
	apiRouterGroup.GET("/"+compoundsPath+"/:cas_number", controller.GetCompoundAction)

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uploadPageHtml))
	})

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
