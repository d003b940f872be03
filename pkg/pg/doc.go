// Package pg connects to PostgreSQL with pgx/v5 and applies goose migrations.
//
// Connect opens a *pgxpool.Pool from Config, retrying while the database comes
// up. Migrate runs migrations from an fs.FS so schema files can be embedded in
// the binary next to the code that queries them. Healthcheck adapts the pool to
// the func(context.Context) error shape used by readiness checks.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil { ... }
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//	if err := pg.Migrate(ctx, pool, ruleset.Migrations, ruleset.MigrationsDir, cfg, log); err != nil { ... }
package pg
