package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

const (
	// ProcessedRequestPrefix maps requestID -> hash of its verification tx.
	ProcessedRequestPrefix = "processed_requests"
	// SubmittedTxStatusPrefix holds txs whose receipt is still outstanding.
	SubmittedTxStatusPrefix = "submitted_txs"
	// ErrorTxStatusPrefix holds txs that failed on submit or on commit.
	ErrorTxStatusPrefix = "unsuccessful_txs"
)

// LevelDBStorage keeps three key spaces:
// 1) requestID -> hash of the verification tx sent for it (idempotency)
// 2) requestID+hash -> status of that tx
// 3) pending and unsuccessful queues keyed by requestID+hash
type LevelDBStorage struct {
	sync.Mutex
	db *leveldb.DB
}

func NewLevelDBStorage(path string) (*LevelDBStorage, error) {
	database, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	return &LevelDBStorage{db: database}, nil
}

// IsRequestProcessed returns whether a verification tx has ever been
// recorded for the given request.
func (s *LevelDBStorage) IsRequestProcessed(requestID uint64) (bool, error) {
	s.Lock()
	defer s.Unlock()

	exists, err := s.db.Has(processedKey(requestID), nil)
	if err != nil {
		return false, fmt.Errorf("failed to get if storage has key: %w", err)
	}

	return exists, nil
}

// SetTxStatus sets status for the given verification tx.
// requestID + hash can be one of 4 statuses:
// 1) Error while submitting tx - relay.ErrorOnSubmit
// 2) tx submitted successfully (temporary status, updated once the home
//    chain commits it) - relay.Submitted
//	2.a) tx reverted on commit - relay.ErrorOnCommit
//  2.b) tx successfully committed - relay.Committed
// Status "2" keeps the tx in the SubmittedTxStatusPrefix queue until it
// resolves to "2.a" or "2.b".
func (s *LevelDBStorage) SetTxStatus(requestID uint64, hash string, txInfo relay.SubmittedTxInfo) (err error) {
	s.Lock()
	defer s.Unlock()

	t, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("failed to open leveldb transaction: %w", err)
	}
	defer t.Discard()

	data, err := json.Marshal(txInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal SubmittedTxInfo: %w", err)
	}

	if err = t.Put(constructKey(requestID, hash), data, nil); err != nil {
		return fmt.Errorf("failed to set tx status: %w", err)
	}

	if err = t.Put(processedKey(requestID), []byte(hash), nil); err != nil {
		return fmt.Errorf("failed to mark request processed: %w", err)
	}

	switch txInfo.Status {
	case relay.Submitted:
		err = saveIntoPendingQueue(t, requestID, hash, relay.PendingSubmittedTxInfo{
			RequestID:       requestID,
			SubmittedTxHash: hash,
			SubmitTime:      time.Now(),
		})
	case relay.Committed, relay.ErrorOnCommit:
		err = removeFromPendingQueue(t, requestID, hash)
	}
	if err != nil {
		return err
	}

	if txInfo.Status == relay.ErrorOnCommit || txInfo.Status == relay.ErrorOnSubmit {
		err = saveIntoErrorQueue(t, requestID, hash, relay.UnsuccessfulTxInfo{
			RequestID:       requestID,
			SubmittedTxHash: hash,
			SubmitTime:      time.Now(),
			Type:            txInfo.Status,
			Message:         txInfo.Message,
		})
		if err != nil {
			return err
		}
	}

	return t.Commit()
}

// GetAllPendingTxs returns every verification tx recorded as Submitted
// whose final status is unknown.
func (s *LevelDBStorage) GetAllPendingTxs() ([]*relay.PendingSubmittedTxInfo, error) {
	s.Lock()
	defer s.Unlock()

	iterator := s.db.NewIterator(util.BytesPrefix([]byte(SubmittedTxStatusPrefix)), nil)
	defer iterator.Release()

	var txs []*relay.PendingSubmittedTxInfo
	for iterator.Next() {
		var txInfo relay.PendingSubmittedTxInfo
		if err := json.Unmarshal(iterator.Value(), &txInfo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data into PendingSubmittedTxInfo: %w", err)
		}

		txs = append(txs, &txInfo)
	}
	return txs, nil
}

// GetAllUnsuccessfulTxs returns every verification tx that ended in an
// error status.
func (s *LevelDBStorage) GetAllUnsuccessfulTxs() ([]*relay.UnsuccessfulTxInfo, error) {
	s.Lock()
	defer s.Unlock()

	iterator := s.db.NewIterator(util.BytesPrefix([]byte(ErrorTxStatusPrefix)), nil)
	defer iterator.Release()

	var txs []*relay.UnsuccessfulTxInfo
	for iterator.Next() {
		var txInfo relay.UnsuccessfulTxInfo
		if err := json.Unmarshal(iterator.Value(), &txInfo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data into UnsuccessfulTxInfo: %w", err)
		}

		txs = append(txs, &txInfo)
	}
	return txs, nil
}

func (s *LevelDBStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}

func saveIntoPendingQueue(t *leveldb.Transaction, requestID uint64, hash string, txInfo relay.PendingSubmittedTxInfo) error {
	data, err := json.Marshal(txInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal PendingSubmittedTxInfo: %w", err)
	}

	return t.Put(queueKey(SubmittedTxStatusPrefix, requestID, hash), data, nil)
}

func removeFromPendingQueue(t *leveldb.Transaction, requestID uint64, hash string) error {
	if err := t.Delete(queueKey(SubmittedTxStatusPrefix, requestID, hash), nil); err != nil {
		return fmt.Errorf("failed to remove PendingSubmittedTxInfo for tx %s: %w", hash, err)
	}

	return nil
}

func saveIntoErrorQueue(t *leveldb.Transaction, requestID uint64, hash string, txInfo relay.UnsuccessfulTxInfo) error {
	data, err := json.Marshal(txInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal UnsuccessfulTxInfo: %w", err)
	}

	return t.Put(queueKey(ErrorTxStatusPrefix, requestID, hash), data, nil)
}

func uintToBytes(num uint64) []byte {
	return []byte(strconv.FormatUint(num, 10))
}

func processedKey(requestID uint64) []byte {
	return append([]byte(ProcessedRequestPrefix), uintToBytes(requestID)...)
}

func constructKey(num uint64, str string) []byte {
	return append(uintToBytes(num), str...)
}

func queueKey(prefix string, num uint64, str string) []byte {
	return append([]byte(prefix), constructKey(num, str)...)
}
