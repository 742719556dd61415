package main

import (
	"github.com/Nami-00/cas/contracts"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ServiceContainer struct {
	OverrideTable     contracts.OverrideTable
	CompoundResolver  contracts.CompoundResolver
	BatchDispatcher   contracts.BatchDispatcher
	WorkbookProcessor contracts.WorkbookProcessor
	ResultStore       contracts.ResultStore
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(pubchemBaseUrl string, logger zerolog.Logger) (container ServiceContainer) {
	normalizer := NewCasNormalizer()

	container.OverrideTable = NewOverrideTable(normalizer)
	container.CompoundResolver = NewPubchemResolver(pubchemBaseUrl)
	container.BatchDispatcher = NewCasBatchDispatcher(
		container.OverrideTable, container.CompoundResolver, LookupWorkersCount, logger,
	)
	container.WorkbookProcessor = NewExcelWorkbookProcessor(container.BatchDispatcher)
	container.ResultStore = NewDownloadStore(ResultTtl, ResultStoreSize)
	container.ApiController = NewApiController(
		container.WorkbookProcessor, container.ResultStore,
		container.OverrideTable, container.CompoundResolver,
	)

	container.Router = SetupRouter(container.ApiController)

	return
}
