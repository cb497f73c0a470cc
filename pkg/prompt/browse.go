package prompt

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/session"
)

// Action is one entry of the browse menu. The values are menu positions.
type Action int

const (
	ActionSearch Action = iota
	ActionStatus
	ActionDistrict
	ActionRecord
	ActionTemplate
	ActionPreview
	ActionPrint
	ActionReset
	ActionQuit
)

var menuLabels = []string{
	ActionSearch:   "検索",
	ActionStatus:   "状態で絞り込み",
	ActionDistrict: "地区で絞り込み",
	ActionRecord:   "物件を選択",
	ActionTemplate: "テンプレを選択",
	ActionPreview:  "プレビュー",
	ActionPrint:    "印刷",
	ActionReset:    "条件をリセット",
	ActionQuit:     "終了",
}

// MenuLabels returns the menu entries in Action order.
func MenuLabels() []string {
	return append([]string(nil), menuLabels...)
}

// DocumentFunc consumes the document for the current session state.
type DocumentFunc func(ctx context.Context, doc document.Document) error

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithPreview sets the function that shows the current document.
func WithPreview(fn DocumentFunc) BrowserOption {
	return func(b *Browser) {
		b.preview = fn
	}
}

// WithPrint sets the function that prints the current document.
func WithPrint(fn DocumentFunc) BrowserOption {
	return func(b *Browser) {
		b.print = fn
	}
}

// WithBrowserLogger sets the logger used for browse events.
func WithBrowserLogger(logger *zap.Logger) BrowserOption {
	return func(b *Browser) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Browser runs the interactive menu loop over a session.
type Browser struct {
	session *session.Session
	driver  Driver
	preview DocumentFunc
	print   DocumentFunc
	logger  *zap.Logger
}

func NewBrowser(sess *session.Session, driver Driver, opts ...BrowserOption) *Browser {
	b := &Browser{session: sess, driver: driver, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Run loops until the user quits or aborts the main menu. Aborting a sub
// prompt returns to the menu.
func (b *Browser) Run(ctx context.Context) error {
	if b.session == nil || b.driver == nil {
		return errors.New("prompt: browser needs a session and a driver")
	}
	if err := b.session.LoadErr(); err != nil {
		if err := b.driver.Info(ctx, "! "+err.Error()); err != nil {
			return err
		}
	}

	for {
		if err := b.driver.Info(ctx, b.summary()); err != nil {
			return err
		}
		idx, err := b.driver.Select(ctx, SelectConfig{Message: "操作", Options: menuLabels, PageSize: len(menuLabels)})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(menuLabels) {
			return fmt.Errorf("prompt: menu index %d out of range", idx)
		}

		action := Action(idx)
		if action == ActionQuit {
			return nil
		}
		if err := b.handle(ctx, action); err != nil {
			if errors.Is(err, ErrAborted) {
				continue
			}
			return err
		}
	}
}

func (b *Browser) handle(ctx context.Context, action Action) error {
	s := b.session
	switch action {
	case ActionSearch:
		query, err := b.driver.Input(ctx, InputConfig{Message: "検索語", Default: s.State().Query, Help: "物件ID・須賀利No・氏名・住所を部分一致で検索します"})
		if err != nil {
			return err
		}
		s.SetQuery(query)
	case ActionStatus:
		value, err := b.choose(ctx, "状態", s.StatusOptions(), s.State().Status)
		if err != nil {
			return err
		}
		s.SetStatus(value)
	case ActionDistrict:
		value, err := b.choose(ctx, "地区", s.DistrictOptions(), s.State().District)
		if err != nil {
			return err
		}
		s.SetDistrict(value)
	case ActionRecord:
		return b.pickRecord(ctx)
	case ActionTemplate:
		return b.pickTemplate(ctx)
	case ActionPreview:
		return b.emit(ctx, b.preview, "プレビュー")
	case ActionPrint:
		ok, err := b.driver.Confirm(ctx, ConfirmConfig{Message: "印刷しますか？", Default: true})
		if err != nil || !ok {
			return err
		}
		return b.emit(ctx, b.print, "印刷")
	case ActionReset:
		s.Reset()
	}
	b.logger.Debug("browse action", zap.Int("action", int(action)), zap.Int("subset", len(s.Subset())))
	return nil
}

func (b *Browser) choose(ctx context.Context, message string, options []string, current string) (string, error) {
	idx, err := b.driver.Select(ctx, SelectConfig{Message: message, Options: options, DefaultIndex: indexOf(options, current)})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("prompt: %s index %d out of range", message, idx)
	}
	return options[idx], nil
}

func (b *Browser) pickRecord(ctx context.Context) error {
	subset := b.session.Subset()
	if len(subset) == 0 {
		return b.driver.Info(ctx, document.NoticeNoRecords)
	}
	labels := make([]string, len(subset))
	current := 0
	for i, rec := range subset {
		labels[i] = rec.PickerLabel()
		if rec.ID() == b.session.SelectedID() {
			current = i
		}
	}
	idx, err := b.driver.Select(ctx, SelectConfig{Message: "物件", Options: labels, DefaultIndex: current, PageSize: 15})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(subset) {
		return fmt.Errorf("prompt: record index %d out of range", idx)
	}
	return b.session.Select(subset[idx].ID())
}

func (b *Browser) pickTemplate(ctx context.Context) error {
	list := b.session.Templates()
	if len(list) == 0 {
		return b.driver.Info(ctx, document.NoticeTemplateNotFound)
	}
	options := make([]string, len(list))
	current := 0
	for i, tpl := range list {
		options[i] = tpl.ID + "  " + tpl.Title
		if tpl.ID == b.session.TemplateID() {
			current = i
		}
	}
	idx, err := b.driver.Select(ctx, SelectConfig{Message: "テンプレ", Options: options, DefaultIndex: current})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(list) {
		return fmt.Errorf("prompt: template index %d out of range", idx)
	}
	b.session.SetTemplate(list[idx].ID)
	return nil
}

func (b *Browser) emit(ctx context.Context, fn DocumentFunc, what string) error {
	if fn == nil {
		return b.driver.Info(ctx, what+"は利用できません")
	}
	doc := b.session.Document()
	if doc.IsNotice() {
		return b.driver.Info(ctx, doc.Notice)
	}
	return fn(ctx, doc)
}

func (b *Browser) summary() string {
	s := b.session
	label := document.MissingValue
	if rec, err := s.Current(); err == nil {
		label = rec.PickerLabel()
	}
	return fmt.Sprintf("該当 %d/%d 件 ／ 選択: %s ／ テンプレ: %s", len(s.Subset()), s.Store().Len(), label, s.TemplateID())
}
