package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"armada/infras/otel"
	"armada/shared/constant"
	"armada/shared/dto"
	"armada/shared/logger"

	"github.com/rs/zerolog/log"
)

var (
	errRequiredFilter = errors.New("required filter")
)

// Repository stores records of type T in one JSON slot, evaluating filters,
// ordering, and pagination in memory over the records' `db` struct tags.
type Repository[T any] struct {
	provider      *Provider
	otel          otel.Otel
	slot          string
	entitas       string
	primaryColumn string
	seed          []byte
}

// NewRepository binds a slot to a record type. A non-nil seed is parsed as
// the slot's initial content the first time the slot is read before any
// write.
func NewRepository[T any](entitasName, slot, primaryColumn string, provider *Provider, otl otel.Otel, seed []byte) Repository[T] {
	return Repository[T]{
		provider:      provider,
		otel:          otl,
		slot:          slot,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		seed:          seed,
	}
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	lock := repo.provider.lock(repo.slot)
	lock.Lock()
	defer lock.Unlock()

	records, err := repo.load()
	if err != nil {
		scope.TraceError(err)

		return err
	}

	records = append(records, model)

	if err = repo.save(records); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertBulk", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	lock := repo.provider.lock(repo.slot)
	lock.Lock()
	defer lock.Unlock()

	records, err := repo.load()
	if err != nil {
		scope.TraceError(err)

		return err
	}

	records = append(records, models...)

	if err = repo.save(records); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return false, errRequiredFilter
	}

	lock := repo.provider.lock(repo.slot)
	lock.Lock()
	defer lock.Unlock()

	records, err := repo.load()
	if err != nil {
		scope.TraceError(err)

		return false, err
	}

	for i := range records {
		if matchGroup(records[i], filter) {
			return true, nil
		}
	}

	return false, nil
}

// Get returns the first matching record, or the zero value when nothing
// matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	var zero T

	lock := repo.provider.lock(repo.slot)
	lock.Lock()
	defer lock.Unlock()

	records, err := repo.load()
	if err != nil {
		scope.TraceError(err)

		return zero, err
	}

	for i := range records {
		if matchGroup(records[i], filter) {
			return records[i], nil
		}
	}

	return zero, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	lock := repo.provider.lock(repo.slot)
	lock.Lock()
	defer lock.Unlock()

	records, err := repo.load()
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	matched := make([]T, 0, len(records))

	for i := range records {
		if matchGroup(records[i], filter) {
			matched = append(matched, records[i])
		}
	}

	if params.SortBy != "" && params.SortDir != "" {
		sortRecords(matched, params.SortBy, params.SortDir)
	}

	return slicePage(matched, params.Page, params.Limit), nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	lock := repo.provider.lock(repo.slot)
	lock.Lock()
	defer lock.Unlock()

	records, err := repo.load()
	if err != nil {
		scope.TraceError(err)

		return 0, err
	}

	count := 0

	for i := range records {
		if matchGroup(records[i], filter) {
			count++
		}
	}

	return count, nil
}

// Update applies the column/value map to every matching record and rewrites
// the slot. Map keys without a matching `db` tag on T are ignored.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	lock := repo.provider.lock(repo.slot)
	lock.Lock()
	defer lock.Unlock()

	records, err := repo.load()
	if err != nil {
		scope.TraceError(err)

		return err
	}

	for i := range records {
		if !matchGroup(records[i], filter) {
			continue
		}

		if err = applyFields(&records[i], mod); err != nil {
			scope.TraceError(err)

			return err
		}
	}

	if err = repo.save(records); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	lock := repo.provider.lock(repo.slot)
	lock.Lock()
	defer lock.Unlock()

	records, err := repo.load()
	if err != nil {
		scope.TraceError(err)

		return err
	}

	kept := make([]T, 0, len(records))

	for i := range records {
		if !matchGroup(records[i], filter) {
			kept = append(kept, records[i])
		}
	}

	if err = repo.save(kept); err != nil {
		scope.TraceError(err)

		return err
	}

	return nil
}

func (repo *Repository[T]) load() ([]T, error) {
	data, err := os.ReadFile(repo.provider.path(repo.slot))
	if errors.Is(err, os.ErrNotExist) {
		if len(repo.seed) == 0 {
			return []T{}, nil
		}

		data = repo.seed
	} else if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to read slot (%s): %w", repo.entitas, err)
	}

	var records []T

	if err := json.Unmarshal(data, &records); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to decode slot (%s): %w", repo.entitas, err)
	}

	return records, nil
}

func (repo *Repository[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to encode slot (%s): %w", repo.entitas, err)
	}

	path := repo.provider.path(repo.slot)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to write slot (%s): %w", repo.entitas, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to replace slot (%s): %w", repo.entitas, err)
	}

	return nil
}

func matchGroup(record any, group dto.FilterGroup) bool {
	operator := group.Operator
	if operator == "" {
		operator = dto.FilterGroupOperatorAnd
	}

	for _, raw := range group.Filters {
		var ok bool

		switch filter := raw.(type) {
		case dto.Filter:
			ok = matchFilter(record, filter)
		case dto.FilterGroup:
			ok = matchGroup(record, filter)
		default:
			continue
		}

		if operator == dto.FilterGroupOperatorOr && ok {
			return true
		}

		if operator == dto.FilterGroupOperatorAnd && !ok {
			return false
		}
	}

	return operator == dto.FilterGroupOperatorAnd || len(group.Filters) == 0
}

func matchFilter(record any, filter dto.Filter) bool {
	field, ok := fieldByTag(reflect.ValueOf(record), filter.Field)
	if !ok {
		log.Warn().Str("field", filter.Field).Msg("filter references unknown field")

		return false
	}

	switch filter.Operator {
	case dto.FilterOperatorEq:
		return compareValues(field, filter.Value) == 0
	case dto.FilterOperatorNotEq:
		return compareValues(field, filter.Value) != 0
	case dto.FilterOperatorLike:
		needle := strings.ToLower(fmt.Sprintf("%v", filter.Value))

		return strings.Contains(strings.ToLower(stringify(field)), needle)
	case dto.FilterOperatorLessEq:
		return compareValues(field, filter.Value) <= 0
	case dto.FilterOperatorGreaterEq:
		return compareValues(field, filter.Value) >= 0
	case dto.FilterOperatorIn:
		values := reflect.ValueOf(filter.Value)
		if values.Kind() != reflect.Slice && values.Kind() != reflect.Array {
			return false
		}

		for i := range values.Len() {
			if compareValues(field, values.Index(i).Interface()) == 0 {
				return true
			}
		}

		return false
	case dto.FilterIsNull:
		return field.IsZero()
	case dto.FilterIsNotNull:
		return !field.IsZero()
	default:
		log.Warn().Str("operator", filter.Operator).Msg("filter operator not supported in memory")

		return false
	}
}

// fieldByTag finds the struct field carrying the given `db` tag, recursing
// into nested structs so grouped fields stay addressable by column name.
func fieldByTag(value reflect.Value, tag string) (reflect.Value, bool) {
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, false
		}

		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	valueType := value.Type()

	for i := range valueType.NumField() {
		field := valueType.Field(i)

		if field.Tag.Get("db") == tag {
			return value.Field(i), true
		}

		nested := value.Field(i)

		for nested.Kind() == reflect.Pointer && !nested.IsNil() {
			nested = nested.Elem()
		}

		if nested.Kind() == reflect.Struct && nested.Type() != reflect.TypeOf(time.Time{}) {
			if found, ok := fieldByTag(nested, tag); ok {
				return found, true
			}
		}
	}

	return reflect.Value{}, false
}

// compareValues orders a record field against a filter value: times by
// instant, numbers numerically, everything else as strings.
func compareValues(field reflect.Value, value any) int {
	for field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return strings.Compare("", fmt.Sprintf("%v", value))
		}

		field = field.Elem()
	}

	if fieldTime, ok := field.Interface().(time.Time); ok {
		if valueTime, ok := toTime(value); ok {
			return fieldTime.Compare(valueTime)
		}
	}

	fieldNum, fieldOk := toFloat(field.Interface())
	valueNum, valueOk := toFloat(value)

	if fieldOk && valueOk {
		switch {
		case fieldNum < valueNum:
			return -1
		case fieldNum > valueNum:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(stringify(field), fmt.Sprintf("%v", value))
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, false
		}

		return parsed, true
	default:
		return time.Time{}, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}

		return num, true
	default:
		return 0, false
	}
}

func stringify(field reflect.Value) string {
	for field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return ""
		}

		field = field.Elem()
	}

	return fmt.Sprintf("%v", field.Interface())
}

func sortRecords[T any](records []T, sortBy, sortDir string) {
	descending := strings.EqualFold(sortDir, dto.SortDirDesc)

	sort.SliceStable(records, func(i, j int) bool {
		left, okLeft := fieldByTag(reflect.ValueOf(records[i]), sortBy)
		right, okRight := fieldByTag(reflect.ValueOf(records[j]), sortBy)

		if !okLeft || !okRight {
			return false
		}

		cmp := compareValues(left, right.Interface())
		if descending {
			return cmp > 0
		}

		return cmp < 0
	})
}

// slicePage cuts the page window out of the matched records. An offset past
// the end yields an empty slice rather than snapping back to the last page.
func slicePage[T any](records []T, page, limit int) []T {
	if limit <= 0 {
		return records
	}

	if page <= 0 {
		page = constant.DefaultValuePage
	}

	offset := (page - 1) * limit
	if offset >= len(records) {
		return []T{}
	}

	end := offset + limit
	if end > len(records) {
		end = len(records)
	}

	return records[offset:end]
}

// applyFields writes the column/value map onto a record through its `db`
// tags.
func applyFields[T any](record *T, mod map[string]any) error {
	value := reflect.ValueOf(record).Elem()

	for column, raw := range mod {
		field, ok := fieldByTag(value, column)
		if !ok || !field.CanSet() {
			continue
		}

		newValue := reflect.ValueOf(raw)

		// Optional update fields arrive as pointers; a nil pointer means
		// "leave the field alone".
		if newValue.Kind() == reflect.Pointer {
			if newValue.IsNil() {
				continue
			}

			newValue = newValue.Elem()
		}

		switch {
		case newValue.Type().AssignableTo(field.Type()):
			field.Set(newValue)
		case newValue.Type().ConvertibleTo(field.Type()):
			field.Set(newValue.Convert(field.Type()))
		default:
			return fmt.Errorf("cannot assign %s to field %s", newValue.Type(), column)
		}
	}

	return nil
}
