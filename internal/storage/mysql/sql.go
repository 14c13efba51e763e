package mysql

const deleteTableSQL = `DELETE FROM export_rows WHERE sheet_name = ?`

const insertRowsPrefix = "INSERT INTO export_rows\n" +
	"  (sheet_name, position, place_id, name, address, rating, review_count, phone, hours, maps_url)\nVALUES "

const insertRowPlaceholders = "(?,?,?,?,?,?,?,?,?,?)"

// rows per INSERT; 10 params each keeps well under the placeholder limit
const insertBatchSize = 500

const listTableSQL = `
SELECT name, address, rating, review_count, phone, hours, maps_url, place_id
FROM export_rows
WHERE sheet_name = ?
ORDER BY position
`

const insertRunSQL = `
INSERT INTO search_runs
  (id, city, district, food_type, restaurant_name, min_rating, full_scan,
   total_count, sheet_name, saved, message, started_at, duration_ms)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getRunSQL = `
SELECT id, city, district, food_type, restaurant_name, min_rating, full_scan,
       total_count, sheet_name, saved, message, started_at, duration_ms
FROM search_runs
WHERE id = ?
`
