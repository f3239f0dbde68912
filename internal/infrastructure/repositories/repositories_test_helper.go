package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUploadedDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE uploaded_documents (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		doc_type TEXT NOT NULL,
		file_name TEXT,
		storage_ref TEXT NOT NULL,
		uploaded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (owner_id, doc_type)
	);`)
}

func createDocumentSubmissionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE document_submissions (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		category TEXT NOT NULL,
		address_proof_variant TEXT NOT NULL,
		document_ids TEXT NOT NULL,
		submitted_at DATETIME,
		created_at DATETIME
	);`)
}

func createPendingDisbursementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE pending_disbursements (
		lead_id TEXT PRIMARY KEY,
		lead_name TEXT NOT NULL,
		sales_executive TEXT,
		bank_name TEXT,
		disbursement_type TEXT NOT NULL,
		requested_amount INTEGER NOT NULL,
		hard_copy BOOLEAN NOT NULL DEFAULT 0,
		verification_initiate BOOLEAN NOT NULL DEFAULT 0,
		scan BOOLEAN NOT NULL DEFAULT 0,
		raas BOOLEAN NOT NULL DEFAULT 0,
		rlms BOOLEAN NOT NULL DEFAULT 0,
		cod BOOLEAN NOT NULL DEFAULT 0,
		po_assigned BOOLEAN NOT NULL DEFAULT 0,
		income BOOLEAN NOT NULL DEFAULT 0,
		lnt BOOLEAN NOT NULL DEFAULT 0,
		appointment_fixed BOOLEAN NOT NULL DEFAULT 0,
		documentation BOOLEAN NOT NULL DEFAULT 0,
		pending_docs TEXT,
		post_sanction_date DATETIME,
		appointment_date DATETIME,
		appointment_time TEXT,
		documentation_date DATETIME,
		sanction_amt TEXT,
		disbursement_done TEXT,
		utr TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCompletedDisbursementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE completed_disbursements (
		lead_id TEXT PRIMARY KEY,
		lead_name TEXT NOT NULL,
		sales_executive TEXT,
		bank_name TEXT,
		status TEXT NOT NULL,
		payment_amount TEXT,
		utr TEXT,
		completed_at DATETIME,
		created_at DATETIME
	);`)
}

func createDisbursementTables(t *testing.T, db *gorm.DB) {
	createPendingDisbursementTable(t, db)
	createCompletedDisbursementTable(t, db)
}
