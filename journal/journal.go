package journal

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

// receipt key: receipt:{finished unix nano}:{run id} value: receipt json
const receiptPrefix = "receipt:"

// Receipt one publish attempt outcome
type Receipt struct {
	RunID       string   `json:"run_id"`
	Group       string   `json:"group"`
	Window      string   `json:"window"`
	Destination string   `json:"destination"`
	Bytes       int      `json:"bytes"`
	Charts      int      `json:"charts"`
	Skipped     []string `json:"skipped,omitempty"`
	Success     bool     `json:"success"`
	FinishedAt  int64    `json:"finished_at"`
	ElapsedMS   int64    `json:"elapsed_ms"`
}

// Journal opt-in publish receipt store
type Journal struct {
	db *leveldb.DB
}

// Open open journal at root
func Open(root string) (*Journal, error) {
	db, err := leveldb.OpenFile(root, nil)
	if err != nil {
		zap.L().Error("open journal failed", zap.Error(err), zap.String("root", root))
		return nil, err
	}

	return &Journal{db}, nil
}

// Close close journal
func (s *Journal) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Record append a publish receipt
func (s *Journal) Record(receipt *Receipt) error {
	buffer, err := sonic.ConfigFastest.Marshal(receipt)
	if err != nil {
		zap.L().Error("marshal receipt failed", zap.Error(err), zap.Any("receipt", receipt))
		return err
	}

	key := fmt.Sprintf("%s%020d:%s", receiptPrefix, receipt.FinishedAt, receipt.RunID)
	err = s.db.Put([]byte(key), buffer, nil)
	if err != nil {
		zap.L().Error("save receipt failed",
			zap.Error(err),
			zap.String("key", key),
			zap.String("run_id", receipt.RunID))
		return err
	}

	return nil
}

// List return receipts in chronological order, newest last
func (s *Journal) List() ([]*Receipt, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(receiptPrefix)), nil)
	var receipts []*Receipt
	for iter.Next() {
		receipt := new(Receipt)
		err := sonic.ConfigFastest.Unmarshal(iter.Value(), receipt)
		if err != nil {
			zap.L().Error("parse receipt failed",
				zap.Error(err),
				zap.ByteString("key", iter.Key()),
				zap.ByteString("value", iter.Value()))
			iter.Release()
			return nil, err
		}

		receipts = append(receipts, receipt)
	}
	iter.Release()

	err := iter.Error()
	if err != nil {
		return nil, err
	}

	return receipts, nil
}
