// Package validation 写操作前的业务规则校验。
//
// 字段格式类规则一次性收集全部违规并以 "; " 拼接；
// 领域规则（存在性 → 时间 → 重叠）按顺序执行，首个失败即返回。
// 本包只读存储，从不写入。
package validation

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/publicsuffix"

	"github.com/RyanW84/ShiftsLogger-sub001/config"
	apperrors "github.com/RyanW84/ShiftsLogger-sub001/pkg/errors"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

// ── 只读查询接口（由仓储层实现）──

// WorkerLookup 员工相关只读查询
type WorkerLookup interface {
	WorkerExists(ctx context.Context, id int64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	PhoneTaken(ctx context.Context, phone string, excludeID int64) (bool, error)
}

// LocationLookup 地点相关只读查询
type LocationLookup interface {
	LocationExists(ctx context.Context, id int64) (bool, error)
	LocationNameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
}

// ShiftLookup 班次重叠查询
type ShiftLookup interface {
	WorkerHasOverlap(ctx context.Context, workerID int64, start, end time.Time, excludeID int64) (bool, error)
	LocationHasOverlap(ctx context.Context, locationID int64, start, end time.Time, excludeID int64) (bool, error)
}

var postcodePattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:[ -]?[A-Za-z0-9]+)*$`)

// Validator 校验管线
type Validator struct {
	policy    config.PolicyConfig
	workers   WorkerLookup
	locations LocationLookup
	shifts    ShiftLookup
	validate  *validator.Validate
	phone     *regexp.Regexp
	now       func() time.Time
}

// New 创建校验管线。policy 应已通过 PolicyConfig.Validate。
func New(policy config.PolicyConfig, workers WorkerLookup, locations LocationLookup, shifts ShiftLookup) *Validator {
	v := &Validator{
		policy:    policy,
		workers:   workers,
		locations: locations,
		shifts:    shifts,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		phone:     regexp.MustCompile(policy.PhonePattern),
		now:       time.Now,
	}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// 注册失败只可能源于编程错误
	mustRegister(v.validate, "phone", func(fl validator.FieldLevel) bool {
		return v.phone.MatchString(fl.Field().String())
	})
	mustRegister(v.validate, "postcode", func(fl validator.FieldLevel) bool {
		return postcodePattern.MatchString(fl.Field().String())
	})
	mustRegister(v.validate, "public_tld", func(fl validator.FieldLevel) bool {
		return hasRecognisedTLD(fl.Field().String())
	})

	return v
}

// WithClock 替换时钟（测试用）
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Policy 当前生效的业务规则
func (v *Validator) Policy() config.PolicyConfig {
	return v.policy
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// hasRecognisedTLD 邮箱域名的公共后缀须由 ICANN 管理，且域名不能只是后缀本身
func hasRecognisedTLD(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	if _, icann := publicsuffix.PublicSuffix(domain); !icann {
		return false
	}
	_, err := publicsuffix.EffectiveTLDPlusOne(domain)
	return err == nil
}

// checkStruct 执行结构体标签规则并汇总全部违规
func (v *Validator) checkStruct(s interface{}) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, v.describe(fe))
	}
	return msgs
}

func (v *Validator) describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "public_tld":
		return fmt.Sprintf("%s must use a recognised top-level domain", field)
	case "phone":
		return fmt.Sprintf("%s must be in international format, e.g. %s", field, v.policy.PhoneExample)
	case "postcode":
		return fmt.Sprintf("%s may contain only letters, digits, single spaces or hyphens", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// aggregate 将收集到的违规拼为一条 BadRequest
func aggregate(msgs []string) outcome.Outcome {
	if len(msgs) == 0 {
		return outcome.OK("")
	}
	return outcome.BadRequest("Validation failed: " + strings.Join(msgs, "; "))
}

// lookupFailed 查询出错时转为 InternalError
func lookupFailed(entity string, err error) outcome.Outcome {
	return outcome.Internal(apperrors.Message(apperrors.OpValidate, entity, err.Error()))
}
