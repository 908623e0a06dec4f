// Package audit は在庫操作の監査記録を非同期で書き出す。
// 記録の失敗は呼び出し元の操作を失敗させず、zapの診断ログにだけ出す。
package audit

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const queueSize = 64

// Recorder はエントリをキューに積み、専用のライターgoroutineが1件ずつ永続化する。
// コレクションへの書き込みが単一のライターに直列化される。
type Recorder struct {
	registry repo.RegistryRepository
	logs     repo.AuditLogRepository

	queue   chan model.AuditLog
	flushCh chan chan struct{}
	quit    chan struct{}
	done    chan struct{}

	//closedへの遷移とエンキューを排他する。
	//RLock中にcloseが進むことはないので、closed=falseで積んだ分は必ずFlushに拾われる。
	mu     sync.RWMutex
	closed bool

	//テストで時刻を固定するためのフック
	now func() time.Time
}

func NewRecorder(registry repo.RegistryRepository, logs repo.AuditLogRepository) *Recorder {
	r := &Recorder{
		registry: registry,
		logs:     logs,
		queue:    make(chan model.AuditLog, queueSize),
		flushCh:  make(chan chan struct{}),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		now:      time.Now,
	}
	go r.writer()
	return r
}

// 1回のcheck/fill試行につき1件記録する。
// 表示名はこの時点で解決する。後からレジストリが変わっても記録済みの内容は動かない。
func (r *Recorder) Record(ctx context.Context, action model.AuditAction, userName, productID, storeID string, result model.AuditResult, details string) {
	entry := model.AuditLog{
		Timestamp:   r.now().Truncate(time.Second),
		Action:      action,
		UserName:    userName,
		ProductID:   productID,
		ProductName: r.productName(ctx, productID),
		StoreID:     storeID,
		StoreName:   r.storeName(ctx, storeID),
		Result:      result,
		Details:     details,
	}

	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		//停止後に届いた分は落とさずその場で書く
		r.persist(entry)
		return
	}

	select {
	case r.queue <- entry:
	default:
		//キューが詰まっていても記録は捨てない
		r.persist(entry)
	}
	r.mu.RUnlock()
}

// キューに残っている分をすべて書き切るまで待つ。
func (r *Recorder) Flush() {
	ack := make(chan struct{})
	select {
	case r.flushCh <- ack:
		<-ack
	case <-r.quit:
	}
}

// Flushしてからライターを止める。以後のRecordは同期書き込みになる。
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	//closed=trueにした後なので、これ以降キューには何も増えない
	r.Flush()
	close(r.quit)
	<-r.done
}

func (r *Recorder) writer() {
	defer close(r.done)
	for {
		select {
		case entry := <-r.queue:
			r.persist(entry)
		case ack := <-r.flushCh:
			r.drain()
			close(ack)
		case <-r.quit:
			r.drain()
			return
		}
	}
}

func (r *Recorder) drain() {
	for {
		select {
		case entry := <-r.queue:
			r.persist(entry)
		default:
			return
		}
	}
}

// 1回だけリトライし、それでも駄目ならオペレーター向けに出して諦める。
func (r *Recorder) persist(entry model.AuditLog) {
	if err := r.logs.Append(context.Background(), entry); err == nil {
		return
	}
	if err := r.logs.Append(context.Background(), entry); err != nil {
		zap.L().Error("audit log write failed",
			zap.String("action", string(entry.Action)),
			zap.String("product_id", entry.ProductID),
			zap.String("store_id", entry.StoreID),
			zap.String("result", string(entry.Result)),
			zap.Error(err),
		)
	}
}

// 名前が引けないときはIDをそのまま使う。
func (r *Recorder) productName(ctx context.Context, id string) string {
	products, err := r.registry.ListProducts(ctx)
	if err == nil {
		for _, p := range products {
			if p.ID == id {
				return p.Name
			}
		}
	}
	return id
}

func (r *Recorder) storeName(ctx context.Context, id string) string {
	stores, err := r.registry.ListStores(ctx)
	if err == nil {
		for _, s := range stores {
			if s.ID == id {
				return s.Name
			}
		}
	}
	return id
}
