package main

import (
	"context"
	"log"
	"net/http"

	"caseflow/bizerror"
	"caseflow/common"
	"caseflow/domain"
	"caseflow/domain/engine"
	"caseflow/domain/facts"
	"caseflow/domain/flow"
	"caseflow/es"
	"caseflow/event"
	"caseflow/indices"
	"caseflow/infra/tracing"
	"caseflow/notification"
	"caseflow/persistence"
	"caseflow/servehttp"
	"caseflow/session"

	"github.com/gin-gonic/gin"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

func main() {
	log.Println("service start")

	tracerCfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatalf("parse jaeger config failed %v\n", err)
	}
	tracerCloser, err := tracerCfg.InitGlobalTracer(common.ServiceName)
	if err != nil {
		log.Fatalf("init tracer failed %v\n", err)
	}
	defer tracerCloser.Close()

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		log.Fatalf("parse database config failed %v\n", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			log.Fatalf("failed to prepare database %v\n", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		log.Fatalf("database connection failed %v\n", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	err = ds.GormDB(context.Background()).AutoMigrate(&domain.ApplicationCase{}, &domain.TransitionRecord{},
		&facts.CaseFactRecord{}, &event.EventRecord{}).Error
	if err != nil {
		log.Fatalf("database migration failed %v\n", err)
	}

	// the workflow definition is fixed at startup; a malformed one is fatal
	registry, err := flow.NewHousingRegistry()
	if err != nil {
		log.Fatalf("workflow definition invalid %v\n", err)
	}

	es.CreateClientFromEnv()

	workflowEngine := engine.NewEngine(ds, registry, facts.NewStoredFacts(ds))

	event.EventHandlers = append(event.EventHandlers, notification.TransitionNotifyHandle)
	indices.BootCaseIndexing(workflowEngine)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling(), tracing.TracingIngress())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, common.ServiceName)
	})

	servehttp.RegisterCasesRestAPI(router, workflowEngine, session.SimpleAuthFilter())
	servehttp.RegisterTransitionsRestAPI(router, workflowEngine, session.SimpleAuthFilter())
	indices.RegisterIndicesRestAPI(router, session.SimpleAuthFilter())

	err = router.Run(":80")
	if err != nil {
		panic(err)
	}
}
