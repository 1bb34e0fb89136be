//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestSupplier(t *testing.T, db DBLike, email, tier string) uuid.UUID {
	t.Helper()

	supplierID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, `INSERT INTO suppliers
		(id, company_name, contact_email, password_hash, tier, categories, certifications, latitude, longitude, verified)
		VALUES ($1, $2, $3, $4, $5, '{timber}', '{FSC}', 52.09, 5.12, $6)
		ON CONFLICT (contact_email) DO NOTHING`,
		supplierID, "Supplier "+email, email, passwordHash, tier, tier != "scraped")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM suppliers WHERE contact_email = $1", email).Scan(&supplierID)
	}

	return supplierID
}

func CreateTestSubscription(t *testing.T, db DBLike, supplierID uuid.UUID, tier string, wave, delayMinutes int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `INSERT INTO supplier_subscriptions
		(supplier_id, tier_code, wave_number, visibility_delay_minutes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (supplier_id) DO UPDATE SET
			tier_code = EXCLUDED.tier_code,
			wave_number = EXCLUDED.wave_number,
			visibility_delay_minutes = EXCLUDED.visibility_delay_minutes`,
		supplierID, tier, wave, delayMinutes)
	require.NoError(t, err)
}

func CreateTestShadow(t *testing.T, db DBLike, supplierID uuid.UUID, companyName, email string) uuid.UUID {
	t.Helper()

	shadowID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `INSERT INTO shadow_suppliers
		(id, supplier_id, company_name, email, source)
		VALUES ($1, $2, $3, $4, 'directory-import')`,
		shadowID, supplierID, companyName, email)
	require.NoError(t, err)

	return shadowID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
