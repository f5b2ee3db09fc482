// Package export turns receipt documents into downloadable, shareable and
// printable artifacts: compose the card, rasterize it, then encode, wrap in
// a PDF, hand to a share channel or build a print document.
package export

import (
	"context"
	"errors"
	"image"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/aakb/rasid-api/pkg/raster"
	"github.com/aakb/rasid-api/pkg/receiptcard"
)

// Rasterizer paints a composed card.
type Rasterizer interface {
	Rasterize(ctx context.Context, card *receiptcard.Card) (*image.RGBA, error)
}

// Wrapper places an encoded image on a PDF page.
type Wrapper interface {
	Wrap(data []byte, imgW, imgH int, jpeg bool) ([]byte, error)
}

// ShareTarget names a share channel and its recipient.
type ShareTarget struct {
	Channel   string
	Recipient string
}

// SharePayload is what a share channel delivers.
type SharePayload struct {
	Title string
	Text  string
	File  *Artifact
}

// Sharer delivers a receipt image through an external channel.
type Sharer interface {
	CanShare(target ShareTarget) bool
	Share(ctx context.Context, target ShareTarget, payload SharePayload) error
}

// Spooler sends a rendered receipt to a physical printer.
type Spooler interface {
	Spool(ctx context.Context, img image.Image) error
}

// Request is one document to export. Letterhead overrides the composer's
// default when set. Key overrides the in-flight guard key, which is the
// receipt number by default.
type Request struct {
	Document   receiptcard.Document
	Letterhead *receiptcard.Letterhead
	Key        string
}

func (r Request) guardKey() string {
	if r.Key != "" {
		return r.Key
	}
	return "receipt:" + strconv.FormatInt(r.Document.Number, 10)
}

// Artifact is an in-memory export result. It is never persisted.
type Artifact struct {
	Filename string
	MIMEType string
	Data     []byte
	Width    int
	Height   int
	JobID    string
	State    State
}

// ShareResult reports what happened to a share request. When Shared is false
// the Artifact must be offered as a download together with Notice.
type ShareResult struct {
	Shared   bool
	Title    string
	Text     string
	Notice   string
	Artifact *Artifact
}

// Pipeline runs export jobs. It never mutates the documents it is given.
type Pipeline struct {
	composer    *receiptcard.Composer
	rasterizer  Rasterizer
	pdf         Wrapper
	guard       Guard
	sharer      Sharer
	spooler     Spooler
	metrics     *Metrics
	logger      *zap.Logger
	jpegQuality int
	settleDelay time.Duration
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithSharer sets the share channel.
func WithSharer(s Sharer) Option { return func(p *Pipeline) { p.sharer = s } }

// WithSpooler sets the receipt printer used by PrintThermal.
func WithSpooler(s Spooler) Option { return func(p *Pipeline) { p.spooler = s } }

// WithMetrics records export counts and latencies in m.
func WithMetrics(m *Metrics) Option { return func(p *Pipeline) { p.metrics = m } }

// WithGuard replaces the in-memory in-flight guard.
func WithGuard(g Guard) Option { return func(p *Pipeline) { p.guard = g } }

// WithJPEGQuality sets the JPEG encoder quality, 1 to 100.
func WithJPEGQuality(q int) Option { return func(p *Pipeline) { p.jpegQuality = q } }

// WithLogger sets the logger for export, share and print events.
func WithLogger(l *zap.Logger) Option { return func(p *Pipeline) { p.logger = l } }

// WithSettleDelay sets how long print documents wait before printing.
func WithSettleDelay(d time.Duration) Option { return func(p *Pipeline) { p.settleDelay = d } }

// NewPipeline creates a Pipeline with an in-memory guard and no share
// channel or printer unless options say otherwise.
func NewPipeline(composer *receiptcard.Composer, rasterizer Rasterizer, pdf Wrapper, opts ...Option) *Pipeline {
	p := &Pipeline{
		composer:    composer,
		rasterizer:  rasterizer,
		pdf:         pdf,
		guard:       NewMemoryGuard(),
		logger:      zap.NewNop(),
		jpegQuality: raster.DefaultJPEGQuality,
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CanShare reports whether target has a working share channel.
func (p *Pipeline) CanShare(target ShareTarget) bool {
	return p.sharer != nil && p.sharer.CanShare(target)
}

// Export renders req as a PNG, JPEG or PDF download.
func (p *Pipeline) Export(ctx context.Context, req Request, format Format) (art *Artifact, err error) {
	started := time.Now()
	defer func() { p.metrics.observe(OpDownload, format, err, started) }()

	job := newJob(req.Document.Number, OpDownload)
	release, err := p.guard.Acquire(ctx, req.guardKey())
	if err != nil {
		return nil, err
	}
	defer release()

	img, err := p.render(ctx, req, job)
	if err != nil {
		return nil, err
	}

	data, err := p.encode(img, format)
	if err != nil {
		return nil, p.fail(job, KindIO, "encode "+string(format), err)
	}
	art = p.artifact(job, req.Document, format, data, img)
	if err := p.finish(job, StateDownloaded, art); err != nil {
		return nil, err
	}
	return art, nil
}

// Share renders req as a PNG and hands it to the share channel for target.
// Without a usable channel, or when sharing fails, the image comes back as a
// download with a notice instead; the request never fails silently.
func (p *Pipeline) Share(ctx context.Context, req Request, target ShareTarget) (res *ShareResult, err error) {
	started := time.Now()
	defer func() { p.metrics.observe(OpShare, FormatPNG, err, started) }()

	job := newJob(req.Document.Number, OpShare)
	release, err := p.guard.Acquire(ctx, req.guardKey())
	if err != nil {
		return nil, err
	}
	defer release()

	img, err := p.render(ctx, req, job)
	if err != nil {
		return nil, err
	}
	data, err := raster.EncodePNG(img)
	if err != nil {
		return nil, p.fail(job, KindIO, "encode png", err)
	}

	doc := req.Document
	res = &ShareResult{
		Title:    ShareTitle(doc.Number),
		Text:     ShareText(doc.DonorName, doc.Amount),
		Artifact: p.artifact(job, doc, FormatPNG, data, img),
	}

	if !p.CanShare(target) {
		res.Notice = NoticeShareUnavailable
		return res, p.finish(job, StateDownloaded, res.Artifact)
	}

	payload := SharePayload{Title: res.Title, Text: res.Text, File: res.Artifact}
	if shareErr := p.sharer.Share(ctx, target, payload); shareErr != nil {
		p.logger.Warn("share failed, falling back to download",
			zap.String("job_id", job.ID),
			zap.Int64("receipt_no", doc.Number),
			zap.String("channel", target.Channel),
			zap.Error(shareErr),
		)
		res.Notice = NoticeShareFailed
		return res, p.finish(job, StateDownloaded, res.Artifact)
	}

	res.Shared = true
	return res, p.finish(job, StateShareAttempted, res.Artifact)
}

// Print returns a print-only HTML document for req.
func (p *Pipeline) Print(ctx context.Context, req Request) (art *Artifact, err error) {
	started := time.Now()
	defer func() { p.metrics.observe(OpPrint, FormatHTML, err, started) }()

	job := newJob(req.Document.Number, OpPrint)
	release, err := p.guard.Acquire(ctx, req.guardKey())
	if err != nil {
		return nil, err
	}
	defer release()

	img, err := p.render(ctx, req, job)
	if err != nil {
		return nil, err
	}
	data, err := raster.EncodePNG(img)
	if err != nil {
		return nil, p.fail(job, KindIO, "encode png", err)
	}
	page, err := PrintDocument(ShareTitle(req.Document.Number), data, receiptcard.Width, receiptcard.Height, p.settleDelay)
	if err != nil {
		return nil, p.fail(job, KindIO, "print document", err)
	}

	art = p.artifact(job, req.Document, FormatHTML, page, img)
	return art, p.finish(job, StatePrintQueued, art)
}

// PrintThermal sends req to the receipt printer.
func (p *Pipeline) PrintThermal(ctx context.Context, req Request) (jobID string, err error) {
	started := time.Now()
	defer func() { p.metrics.observe(OpThermal, FormatPNG, err, started) }()

	if p.spooler == nil {
		return "", ErrNoPrinter
	}

	job := newJob(req.Document.Number, OpThermal)
	release, err := p.guard.Acquire(ctx, req.guardKey())
	if err != nil {
		return "", err
	}
	defer release()

	img, err := p.render(ctx, req, job)
	if err != nil {
		return "", err
	}
	if err := p.spooler.Spool(ctx, img); err != nil {
		return "", p.fail(job, KindIO, "spool", err)
	}
	if err := job.advance(StatePrintQueued); err != nil {
		return "", err
	}
	p.logger.Info("receipt sent to printer", zap.String("job_id", job.ID), zap.Int64("receipt_no", job.Receipt))
	return job.ID, nil
}

// Card composes req without rasterizing, for previews.
func (p *Pipeline) Card(req Request) (*receiptcard.Card, error) {
	return p.composerFor(req).Compose(req.Document)
}

func (p *Pipeline) composerFor(req Request) *receiptcard.Composer {
	if req.Letterhead != nil {
		return p.composer.WithLetterhead(*req.Letterhead)
	}
	return p.composer
}

func (p *Pipeline) render(ctx context.Context, req Request, job *Job) (*image.RGBA, error) {
	if err := job.advance(StateRendering); err != nil {
		return nil, err
	}
	card, err := p.composerFor(req).Compose(req.Document)
	if err != nil {
		return nil, p.fail(job, KindRender, "compose", err)
	}
	img, err := p.rasterizer.Rasterize(ctx, card)
	if err != nil {
		return nil, p.fail(job, KindRender, "rasterize", err)
	}
	if err := job.advance(StateRasterized); err != nil {
		return nil, err
	}
	return img, nil
}

func (p *Pipeline) encode(img *image.RGBA, format Format) ([]byte, error) {
	switch format {
	case FormatPNG:
		return raster.EncodePNG(img)
	case FormatJPEG:
		return raster.EncodeJPEG(img, p.jpegQuality)
	case FormatPDF:
		data, err := raster.EncodePNG(img)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		return p.pdf.Wrap(data, b.Dx(), b.Dy(), false)
	}
	return nil, errors.New("unsupported format " + string(format))
}

func (p *Pipeline) artifact(job *Job, doc receiptcard.Document, format Format, data []byte, img *image.RGBA) *Artifact {
	b := img.Bounds()
	return &Artifact{
		Filename: Filename(doc.Number, doc.DonorName, format),
		MIMEType: format.MIMEType(),
		Data:     data,
		Width:    b.Dx(),
		Height:   b.Dy(),
		JobID:    job.ID,
	}
}

func (p *Pipeline) finish(job *Job, to State, art *Artifact) error {
	if err := job.advance(to); err != nil {
		return err
	}
	art.State = to
	p.logger.Info("receipt exported",
		zap.String("job_id", job.ID),
		zap.Int64("receipt_no", job.Receipt),
		zap.String("op", string(job.Op)),
		zap.String("state", string(to)),
		zap.String("file", art.Filename),
		zap.Int("bytes", len(art.Data)),
	)
	return nil
}

func (p *Pipeline) fail(job *Job, kind Kind, op string, err error) error {
	_ = job.advance(StateFailed)
	p.logger.Error("receipt export failed",
		zap.String("job_id", job.ID),
		zap.Int64("receipt_no", job.Receipt),
		zap.String("op", op),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)
	return &Error{Kind: kind, Op: op, Err: err}
}
