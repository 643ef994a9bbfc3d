// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"net/http"
	"net/url"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/ogen-go/ogen/conv"
	"github.com/ogen-go/ogen/middleware"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/uri"
	"github.com/ogen-go/ogen/validate"
)

// DeleteCampaignParams is parameters of deleteCampaign operation.
type DeleteCampaignParams struct {
	CampaignID uuid.UUID
}

func unpackDeleteCampaignParams(packed middleware.Parameters) (params DeleteCampaignParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeDeleteCampaignParams(args [1]string, argsEscaped bool, r *http.Request) (params DeleteCampaignParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// DeleteThreadMessageParams is parameters of deleteThreadMessage operation.
type DeleteThreadMessageParams struct {
	CampaignID uuid.UUID
	ContactID  string
	MessageID  string
}

func unpackDeleteThreadMessageParams(packed middleware.Parameters) (params DeleteThreadMessageParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	{
		key := middleware.ParameterKey{
			Name: "contactID",
			In:   "path",
		}
		params.ContactID = packed[key].(string)
	}
	{
		key := middleware.ParameterKey{
			Name: "messageID",
			In:   "path",
		}
		params.MessageID = packed[key].(string)
	}
	return params
}

func decodeDeleteThreadMessageParams(args [3]string, argsEscaped bool, r *http.Request) (params DeleteThreadMessageParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	// Decode path: contactID.
	if err := func() error {
		param := args[1]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[1])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "contactID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToString(val)
				if err != nil {
					return err
				}

				params.ContactID = c
				return nil
			}(); err != nil {
				return err
			}
			if err := func() error {
				if err := (validate.String{
					MinLength:    1,
					MinLengthSet: true,
					MaxLength:    0,
					MaxLengthSet: false,
					Email:        false,
					Hostname:     false,
					Regex:        nil,
				}).Validate(string(params.ContactID)); err != nil {
					return errors.Wrap(err, "string")
				}
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "contactID",
			In:   "path",
			Err:  err,
		}
	}
	// Decode path: messageID.
	if err := func() error {
		param := args[2]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[2])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "messageID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToString(val)
				if err != nil {
					return err
				}

				params.MessageID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "messageID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// ExtractContactsParams is parameters of extractContacts operation.
type ExtractContactsParams struct {
	CampaignID uuid.UUID
}

func unpackExtractContactsParams(packed middleware.Parameters) (params ExtractContactsParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeExtractContactsParams(args [1]string, argsEscaped bool, r *http.Request) (params ExtractContactsParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// GenerateDescriptionParams is parameters of generateDescription operation.
type GenerateDescriptionParams struct {
	CampaignID uuid.UUID
}

func unpackGenerateDescriptionParams(packed middleware.Parameters) (params GenerateDescriptionParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeGenerateDescriptionParams(args [1]string, argsEscaped bool, r *http.Request) (params GenerateDescriptionParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// GetCampaignParams is parameters of getCampaign operation.
type GetCampaignParams struct {
	CampaignID uuid.UUID
}

func unpackGetCampaignParams(packed middleware.Parameters) (params GetCampaignParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeGetCampaignParams(args [1]string, argsEscaped bool, r *http.Request) (params GetCampaignParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// GetCampaignDetailsParams is parameters of getCampaignDetails operation.
type GetCampaignDetailsParams struct {
	CampaignID uuid.UUID
}

func unpackGetCampaignDetailsParams(packed middleware.Parameters) (params GetCampaignDetailsParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeGetCampaignDetailsParams(args [1]string, argsEscaped bool, r *http.Request) (params GetCampaignDetailsParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// GetInboxStatusParams is parameters of getInboxStatus operation.
type GetInboxStatusParams struct {
	CampaignID uuid.UUID
}

func unpackGetInboxStatusParams(packed middleware.Parameters) (params GetInboxStatusParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeGetInboxStatusParams(args [1]string, argsEscaped bool, r *http.Request) (params GetInboxStatusParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// LaunchCampaignParams is parameters of launchCampaign operation.
type LaunchCampaignParams struct {
	CampaignID uuid.UUID
}

func unpackLaunchCampaignParams(packed middleware.Parameters) (params LaunchCampaignParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeLaunchCampaignParams(args [1]string, argsEscaped bool, r *http.Request) (params LaunchCampaignParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// ListCampaignsParams is parameters of listCampaigns operation.
type ListCampaignsParams struct {
	Status OptCampaignStatus
	// NextCursor of the previous page.
	Cursor OptString
	Limit  OptInt
}

func unpackListCampaignsParams(packed middleware.Parameters) (params ListCampaignsParams) {
	{
		key := middleware.ParameterKey{
			Name: "status",
			In:   "query",
		}
		if v, ok := packed[key]; ok {
			params.Status = v.(OptCampaignStatus)
		}
	}
	{
		key := middleware.ParameterKey{
			Name: "cursor",
			In:   "query",
		}
		if v, ok := packed[key]; ok {
			params.Cursor = v.(OptString)
		}
	}
	{
		key := middleware.ParameterKey{
			Name: "limit",
			In:   "query",
		}
		if v, ok := packed[key]; ok {
			params.Limit = v.(OptInt)
		}
	}
	return params
}

func decodeListCampaignsParams(args [0]string, argsEscaped bool, r *http.Request) (params ListCampaignsParams, _ error) {
	q := uri.NewQueryDecoder(r.URL.Query())
	// Decode query: status.
	if err := func() error {
		cfg := uri.QueryParameterDecodingConfig{
			Name:    "status",
			Style:   uri.QueryStyleForm,
			Explode: true,
		}

		if err := q.HasParam(cfg); err == nil {
			if err := q.DecodeParam(cfg, func(d uri.Decoder) error {
				var paramsDotStatusVal CampaignStatus
				if err := func() error {
					val, err := d.DecodeValue()
					if err != nil {
						return err
					}

					c, err := conv.ToString(val)
					if err != nil {
						return err
					}

					paramsDotStatusVal = CampaignStatus(c)
					return nil
				}(); err != nil {
					return err
				}
				params.Status.SetTo(paramsDotStatusVal)
				return nil
			}); err != nil {
				return err
			}
			if err := func() error {
				if value, ok := params.Status.Get(); ok {
					if err := func() error {
						if err := value.Validate(); err != nil {
							return err
						}
						return nil
					}(); err != nil {
						return err
					}
				}
				return nil
			}(); err != nil {
				return err
			}
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "status",
			In:   "query",
			Err:  err,
		}
	}
	// Decode query: cursor.
	if err := func() error {
		cfg := uri.QueryParameterDecodingConfig{
			Name:    "cursor",
			Style:   uri.QueryStyleForm,
			Explode: true,
		}

		if err := q.HasParam(cfg); err == nil {
			if err := q.DecodeParam(cfg, func(d uri.Decoder) error {
				var paramsDotCursorVal string
				if err := func() error {
					val, err := d.DecodeValue()
					if err != nil {
						return err
					}

					c, err := conv.ToString(val)
					if err != nil {
						return err
					}

					paramsDotCursorVal = c
					return nil
				}(); err != nil {
					return err
				}
				params.Cursor.SetTo(paramsDotCursorVal)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "cursor",
			In:   "query",
			Err:  err,
		}
	}
	// Set default value for query: limit.
	{
		val := int(20)
		params.Limit.SetTo(val)
	}
	// Decode query: limit.
	if err := func() error {
		cfg := uri.QueryParameterDecodingConfig{
			Name:    "limit",
			Style:   uri.QueryStyleForm,
			Explode: true,
		}

		if err := q.HasParam(cfg); err == nil {
			if err := q.DecodeParam(cfg, func(d uri.Decoder) error {
				var paramsDotLimitVal int
				if err := func() error {
					val, err := d.DecodeValue()
					if err != nil {
						return err
					}

					c, err := conv.ToInt(val)
					if err != nil {
						return err
					}

					paramsDotLimitVal = c
					return nil
				}(); err != nil {
					return err
				}
				params.Limit.SetTo(paramsDotLimitVal)
				return nil
			}); err != nil {
				return err
			}
			if err := func() error {
				if value, ok := params.Limit.Get(); ok {
					if err := func() error {
						if err := (validate.Int{
							MinSet:        true,
							Min:           1,
							MaxSet:        true,
							Max:           100,
							MinExclusive:  false,
							MaxExclusive:  false,
							MultipleOfSet: false,
							MultipleOf:    0,
						}).Validate(int64(value)); err != nil {
							return errors.Wrap(err, "int")
						}
						return nil
					}(); err != nil {
						return err
					}
				}
				return nil
			}(); err != nil {
				return err
			}
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "limit",
			In:   "query",
			Err:  err,
		}
	}
	return params, nil
}

// ListInboxContactsParams is parameters of listInboxContacts operation.
type ListInboxContactsParams struct {
	CampaignID uuid.UUID
}

func unpackListInboxContactsParams(packed middleware.Parameters) (params ListInboxContactsParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeListInboxContactsParams(args [1]string, argsEscaped bool, r *http.Request) (params ListInboxContactsParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// ListThreadMessagesParams is parameters of listThreadMessages operation.
type ListThreadMessagesParams struct {
	CampaignID uuid.UUID
	ContactID  string
}

func unpackListThreadMessagesParams(packed middleware.Parameters) (params ListThreadMessagesParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	{
		key := middleware.ParameterKey{
			Name: "contactID",
			In:   "path",
		}
		params.ContactID = packed[key].(string)
	}
	return params
}

func decodeListThreadMessagesParams(args [2]string, argsEscaped bool, r *http.Request) (params ListThreadMessagesParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	// Decode path: contactID.
	if err := func() error {
		param := args[1]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[1])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "contactID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToString(val)
				if err != nil {
					return err
				}

				params.ContactID = c
				return nil
			}(); err != nil {
				return err
			}
			if err := func() error {
				if err := (validate.String{
					MinLength:    1,
					MinLengthSet: true,
					MaxLength:    0,
					MaxLengthSet: false,
					Email:        false,
					Hostname:     false,
					Regex:        nil,
				}).Validate(string(params.ContactID)); err != nil {
					return errors.Wrap(err, "string")
				}
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "contactID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// SaveThreadMessageParams is parameters of saveThreadMessage operation.
type SaveThreadMessageParams struct {
	CampaignID uuid.UUID
	ContactID  string
}

func unpackSaveThreadMessageParams(packed middleware.Parameters) (params SaveThreadMessageParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	{
		key := middleware.ParameterKey{
			Name: "contactID",
			In:   "path",
		}
		params.ContactID = packed[key].(string)
	}
	return params
}

func decodeSaveThreadMessageParams(args [2]string, argsEscaped bool, r *http.Request) (params SaveThreadMessageParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	// Decode path: contactID.
	if err := func() error {
		param := args[1]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[1])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "contactID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToString(val)
				if err != nil {
					return err
				}

				params.ContactID = c
				return nil
			}(); err != nil {
				return err
			}
			if err := func() error {
				if err := (validate.String{
					MinLength:    1,
					MinLengthSet: true,
					MaxLength:    0,
					MaxLengthSet: false,
					Email:        false,
					Hostname:     false,
					Regex:        nil,
				}).Validate(string(params.ContactID)); err != nil {
					return errors.Wrap(err, "string")
				}
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "contactID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// SendThreadMessageParams is parameters of sendThreadMessage operation.
type SendThreadMessageParams struct {
	CampaignID uuid.UUID
	ContactID  string
}

func unpackSendThreadMessageParams(packed middleware.Parameters) (params SendThreadMessageParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	{
		key := middleware.ParameterKey{
			Name: "contactID",
			In:   "path",
		}
		params.ContactID = packed[key].(string)
	}
	return params
}

func decodeSendThreadMessageParams(args [2]string, argsEscaped bool, r *http.Request) (params SendThreadMessageParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	// Decode path: contactID.
	if err := func() error {
		param := args[1]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[1])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "contactID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToString(val)
				if err != nil {
					return err
				}

				params.ContactID = c
				return nil
			}(); err != nil {
				return err
			}
			if err := func() error {
				if err := (validate.String{
					MinLength:    1,
					MinLengthSet: true,
					MaxLength:    0,
					MaxLengthSet: false,
					Email:        false,
					Hostname:     false,
					Regex:        nil,
				}).Validate(string(params.ContactID)); err != nil {
					return errors.Wrap(err, "string")
				}
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "contactID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// UpdateCampaignParams is parameters of updateCampaign operation.
type UpdateCampaignParams struct {
	CampaignID uuid.UUID
}

func unpackUpdateCampaignParams(packed middleware.Parameters) (params UpdateCampaignParams) {
	{
		key := middleware.ParameterKey{
			Name: "campaignID",
			In:   "path",
		}
		params.CampaignID = packed[key].(uuid.UUID)
	}
	return params
}

func decodeUpdateCampaignParams(args [1]string, argsEscaped bool, r *http.Request) (params UpdateCampaignParams, _ error) {
	// Decode path: campaignID.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "campaignID",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.CampaignID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "campaignID",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}
