package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lumendata/govcat/pkg/auth"
	kcf "github.com/lumendata/govcat/pkg/configs/server"
	kdb "github.com/lumendata/govcat/pkg/domain/govcat/db"
	kpg "github.com/lumendata/govcat/pkg/domain/govcat/db/postgres"
	"github.com/lumendata/govcat/pkg/domain/teams"
	"github.com/lumendata/govcat/pkg/search"
	"github.com/lumendata/govcat/pkg/utils/echoutil"
	"github.com/lumendata/govcat/pkg/utils/filewatch"
	kstrings "github.com/lumendata/govcat/pkg/utils/strings"

	"github.com/lumendata/govcat/cmd/govcatd/handlers"
)

func main() {

	configPath := flag.String(
		"config-path", os.Getenv("GOVCAT_CONFIG"), "server config path",
	)
	schemaRepo := flag.String(
		"schema-repo", os.Getenv("GOVCAT_SCHEMA"), "schema repository path. overrides the config file",
	)
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	conf, err := kcf.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	{
		// restart to pick up config changes
		wctx, wcancel, err := filewatch.UntilModifyContext(ctx, *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer wcancel()
		ctx = wctx
	}

	repo := conf.SchemaRepository()
	if *schemaRepo != "" {
		repo = *schemaRepo
	}

	db, err := getDBAccesor(ctx, conf.Database(), repo)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	if repo != "" {
		if err := db.Schema().Upgrade(ctx); err != nil {
			log.Fatalf("can not upgrade database schema: %s", err)
		}
		ctx_, ccan := db.Schema().Context(ctx)
		defer ccan()
		ctx = ctx_
	}

	e.Use(auth.Middleware(conf.Auth(), db.Users()))

	api := root("/api")

	searcher := search.New(db.Contracts(), db.Products())
	domainTeams := teams.New(db.Contracts(), db.Products())

	{
		contracts := db.Contracts()
		e.GET(api("contracts"), handlers.ListContractsHandler(contracts))
		e.GET(api("contracts/search"), handlers.SearchContractsHandler(searcher))
		e.POST(api("contracts"), handlers.CreateContractHandler(contracts))
		e.GET(api("contracts/:contractId/"), handlers.GetContractHandler(contracts, "contractId"))
		e.PUT(api("contracts/:contractId/"), handlers.UpdateContractHandler(contracts, "contractId"))
		e.DELETE(api("contracts/:contractId/"), handlers.DeleteContractHandler(contracts, "contractId"))

		e.POST(api("contracts/:contractId/schema"), handlers.AddContractSchemaObjectHandler(contracts, "contractId"))
		e.PUT(api("contracts/:contractId/schema/:objectId/"), handlers.UpdateContractSchemaObjectHandler(contracts, "objectId"))
		e.DELETE(api("contracts/:contractId/schema/:objectId/"), handlers.DeleteContractSchemaObjectHandler(contracts, "objectId"))

		e.POST(api("contracts/:contractId/schema/:objectId/properties"), handlers.AddContractSchemaPropertyHandler(contracts, "objectId"))
		e.PUT(api("contracts/:contractId/schema/:objectId/properties/:propertyId/"), handlers.UpdateContractSchemaPropertyHandler(contracts, "propertyId"))
		e.DELETE(api("contracts/:contractId/schema/:objectId/properties/:propertyId/"), handlers.DeleteContractSchemaPropertyHandler(contracts, "propertyId"))

		e.POST(api("contracts/:contractId/schema/:objectId/quality"), handlers.AddContractQualityRuleHandler(contracts, "objectId"))
		e.PUT(api("contracts/:contractId/schema/:objectId/quality/:ruleId/"), handlers.UpdateContractQualityRuleHandler(contracts, "ruleId"))
		e.DELETE(api("contracts/:contractId/schema/:objectId/quality/:ruleId/"), handlers.DeleteContractQualityRuleHandler(contracts, "ruleId"))

		e.POST(api("contracts/:contractId/members"), handlers.AddContractTeamMemberHandler(contracts, "contractId"))
		e.DELETE(api("contracts/:contractId/members/:memberId/"), handlers.DeleteContractTeamMemberHandler(contracts, "memberId"))

		e.POST(api("contracts/:contractId/roles"), handlers.AddContractRoleHandler(contracts, "contractId"))
		e.DELETE(api("contracts/:contractId/roles/:roleId/"), handlers.DeleteContractRoleHandler(contracts, "roleId"))

		e.POST(api("contracts/:contractId/servers"), handlers.AddContractServerHandler(contracts, "contractId"))
		e.DELETE(api("contracts/:contractId/servers/:serverId/"), handlers.DeleteContractServerHandler(contracts, "serverId"))

		e.POST(api("contracts/:contractId/sla"), handlers.AddContractSlaPropertyHandler(contracts, "contractId"))
		e.DELETE(api("contracts/:contractId/sla/:slaId/"), handlers.DeleteContractSlaPropertyHandler(contracts, "slaId"))

		e.POST(api("contracts/:contractId/support"), handlers.AddContractSupportChannelHandler(contracts, "contractId"))
		e.DELETE(api("contracts/:contractId/support/:channelId/"), handlers.DeleteContractSupportChannelHandler(contracts, "channelId"))
	}

	{
		products := db.Products()
		e.GET(api("products"), handlers.ListProductsHandler(products))
		e.GET(api("products/search"), handlers.SearchProductsHandler(searcher))
		e.POST(api("products"), handlers.CreateProductHandler(products))
		e.GET(api("products/:productId/"), handlers.GetProductHandler(products, "productId"))
		e.PUT(api("products/:productId/"), handlers.UpdateProductHandler(products, "productId"))
		e.DELETE(api("products/:productId/"), handlers.DeleteProductHandler(products, "productId"))

		e.POST(api("products/:productId/input-ports"), handlers.AddProductInputPortHandler(products, "productId"))
		e.DELETE(api("products/:productId/input-ports/:portId/"), handlers.DeleteProductInputPortHandler(products, "portId"))

		e.POST(api("products/:productId/output-ports"), handlers.AddProductOutputPortHandler(products, "productId"))
		e.DELETE(api("products/:productId/output-ports/:portId/"), handlers.DeleteProductOutputPortHandler(products, "portId"))

		e.POST(api("products/:productId/management-ports"), handlers.AddProductManagementPortHandler(products, "productId"))
		e.DELETE(api("products/:productId/management-ports/:portId/"), handlers.DeleteProductManagementPortHandler(products, "portId"))

		e.POST(api("products/:productId/members"), handlers.AddProductTeamMemberHandler(products, "productId"))
		e.DELETE(api("products/:productId/members/:memberId/"), handlers.DeleteProductTeamMemberHandler(products, "memberId"))

		e.POST(api("products/:productId/support"), handlers.AddProductSupportChannelHandler(products, "productId"))
		e.DELETE(api("products/:productId/support/:channelId/"), handlers.DeleteProductSupportChannelHandler(products, "channelId"))
	}

	{
		e.GET(api("teams"), handlers.ListTeamsHandler(domainTeams))
		e.GET(api("teams/members"), handlers.ListTeamMembersHandler(domainTeams))
		e.GET(api("users"), handlers.ListUsersHandler(db.Users()))
		e.GET(api("stats"), handlers.GetStatsHandler(db.Contracts(), db.Products()))
		e.GET(api("whoami"), handlers.WhoamiHandler())
	}

	for _, r := range e.Routes() {
		e.Logger.Debugf("- mount handler: %s %s", strings.ToUpper(r.Method), r.Path)
	}

	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		if err := e.Start(fmt.Sprintf(":%d", conf.Port())); err != nil && err != http.ErrServerClosed {
			ch <- err
		}
	}()

	exit := 0
	select {
	case <-ctx.Done():
		if err := ctx.Err(); err != nil {
			e.Logger.Infof("context has been done: %s, cause: %s", err, context.Cause(ctx))
			exit = 1
		}
	case err := <-ch:
		if err != nil {
			e.Logger.Error("server stops with error:", err)
			exit = 1
		}
	}

	{
		e.Logger.Info("shutting down...")
		qctx, qcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer qcancel()

		if err := e.Shutdown(qctx); err != nil {
			e.Logger.Fatalf("Shutdown with error. %+v", err)
			os.Exit(1)
		}
		os.Exit(exit)
	}
}

func getDBAccesor(ctx context.Context, dburi string, schemaRepo string) (kdb.GovcatDatabase, error) {
	options := []kpg.Option{}
	if schemaRepo != "" {
		options = append(options, kpg.WithSchemaRepository(schemaRepo))
	}
	return kpg.New(ctx, dburi, options...)
}

// root makes a path factory: it receives path elements relative to r
// and returns the full, "/"-terminated route path.
func root(r string) func(...string) string {
	return func(s ...string) string {
		parts := make([]string, len(s)+1)
		parts[0] = r
		copy(parts[1:], s)
		p := path.Join(parts...)
		p = kstrings.TrimPrefixAll(p, "/")

		return kstrings.SuppySuffix("/"+p, "/")
	}
}
