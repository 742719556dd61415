package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	UploadAction(c *gin.Context)
	DownloadAction(c *gin.Context)
	GetCompoundAction(c *gin.Context)
}
