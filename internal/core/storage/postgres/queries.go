package postgres

// SQL queries for ledger, popularity, and session storage operations

const (
	// queryAppendSale inserts one immutable ledger fact.
	// RETURNING clause retrieves the auto-generated sale_seq.
	queryAppendSale = `
		INSERT INTO sales (
			shop, product_id, quantity, revenue, occurred_at, recorded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING sale_seq
	`

	// querySumQuantityByProduct is the trailing-window group-and-aggregate.
	// Ordering is total_quantity DESC with product_id ASC as the
	// deterministic tie-break (lowest product id wins a draw).
	querySumQuantityByProduct = `
		SELECT
			product_id,
			SUM(quantity)::bigint AS total_quantity,
			SUM(revenue) AS total_revenue
		FROM sales
		WHERE shop = $1
		  AND occurred_at >= $2
		  AND occurred_at < $3
		GROUP BY product_id
		ORDER BY total_quantity DESC, product_id ASC
		LIMIT $4
	`

	queryGetPopularity = `
		SELECT shop, product_id, updated_at
		FROM popularity
		WHERE shop = $1
	`

	// queryUpsertPopularity is create-if-absent, replace-if-present on the
	// shop primary key. Concurrent upserts resolve last-writer-wins.
	queryUpsertPopularity = `
		INSERT INTO popularity (shop, product_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (shop) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			updated_at = EXCLUDED.updated_at
	`

	queryGetSession = `
		SELECT shop, access_token, scope, installed_at, updated_at
		FROM sessions
		WHERE shop = $1
	`
)
