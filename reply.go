package crikey

import "fmt"

// ReplyType is a three-digit IRC numeric reply code. Unlike Command (a
// genuine tagged variant with per-shape fields), a numeric reply carries no
// variant-specific data beyond the code itself and its MessageParams, so
// ReplyType is modeled directly as its numeric value rather than as an enum
// with an "Unknown(code)" wrapper case: every code, named or not, already
// round-trips through its own integer value.
type ReplyType uint16

// Named reply codes, covering every RFC-listed numeric in 001-005, 200-263,
// 301-395, and 401-502.
const (
	ReplyWelcome  ReplyType = 1
	ReplyYourHost ReplyType = 2
	ReplyCreated  ReplyType = 3
	ReplyMyInfo   ReplyType = 4
	ReplyBounce   ReplyType = 5

	ReplyTraceLink       ReplyType = 200
	ReplyTraceConnecting ReplyType = 201
	ReplyTraceHandshake  ReplyType = 202
	ReplyTraceUnknown    ReplyType = 203
	ReplyTraceOperator   ReplyType = 204
	ReplyTraceUser       ReplyType = 205
	ReplyTraceServer     ReplyType = 206
	ReplyTraceService    ReplyType = 207
	ReplyTraceNewType    ReplyType = 208
	ReplyTraceClass      ReplyType = 209
	ReplyTraceReconnect  ReplyType = 210
	ReplyStatsLinkInfo   ReplyType = 211
	ReplyStatsCommands   ReplyType = 212
	ReplyEndOfStats      ReplyType = 219
	ReplyUModeIs         ReplyType = 221
	ReplyServList        ReplyType = 234
	ReplyServListEnd     ReplyType = 235
	ReplyStatsUptime     ReplyType = 242
	ReplyStatsOLine      ReplyType = 243
	ReplyLUserClient     ReplyType = 251
	ReplyLUserOp         ReplyType = 252
	ReplyLUserUnknown    ReplyType = 253
	ReplyLUserChannels   ReplyType = 254
	ReplyLUserMe         ReplyType = 255
	ReplyAdminMe         ReplyType = 256
	ReplyAdminLoc1       ReplyType = 257
	ReplyAdminLoc2       ReplyType = 258
	ReplyAdminEmail      ReplyType = 259
	ReplyTraceLog        ReplyType = 261
	ReplyTraceEnd        ReplyType = 262
	ReplyTryAgain        ReplyType = 263

	ReplyAway          ReplyType = 301
	ReplyUserHost      ReplyType = 302
	ReplyIsOn          ReplyType = 303
	ReplyUnAway        ReplyType = 305
	ReplyNowAway       ReplyType = 306
	ReplyWhoIsUser     ReplyType = 311
	ReplyWhoIsServer   ReplyType = 312
	ReplyWhoIsOperator ReplyType = 313
	ReplyWhoWasUser    ReplyType = 314
	ReplyEndOfWho      ReplyType = 315
	ReplyWhoIsIdle     ReplyType = 317
	ReplyEndOfWhoIs    ReplyType = 318
	ReplyWhoIsChannels ReplyType = 319
	ReplyListStart     ReplyType = 321
	ReplyList          ReplyType = 322
	ReplyListEnd       ReplyType = 323
	ReplyChannelModeIs ReplyType = 324
	ReplyUniqOpIs      ReplyType = 325
	ReplyNoTopic       ReplyType = 331
	ReplyTopic         ReplyType = 332
	ReplyInviting      ReplyType = 341
	ReplySummoning     ReplyType = 342
	ReplyInviteList    ReplyType = 346
	ReplyEndOfInvite   ReplyType = 347
	ReplyExceptList    ReplyType = 348
	ReplyEndOfExcept   ReplyType = 349
	ReplyVersion       ReplyType = 351
	ReplyWhoReply      ReplyType = 352
	ReplyNamReply      ReplyType = 353
	ReplyLinks         ReplyType = 364
	ReplyEndOfLinks    ReplyType = 365
	ReplyEndOfNames    ReplyType = 366
	ReplyBanList       ReplyType = 367
	ReplyEndOfBanList  ReplyType = 368
	ReplyEndOfWhoWas   ReplyType = 369
	ReplyInfo          ReplyType = 371
	ReplyMotd          ReplyType = 372
	ReplyEndOfInfo     ReplyType = 374
	ReplyMotdStart     ReplyType = 375
	ReplyEndOfMotd     ReplyType = 376
	ReplyYoureOper     ReplyType = 381
	ReplyRehashing     ReplyType = 382
	ReplyYoureService  ReplyType = 383
	ReplyTime          ReplyType = 391
	ReplyUsersStart    ReplyType = 392
	ReplyUsers         ReplyType = 393
	ReplyEndOfUsers    ReplyType = 394
	ReplyNoUsers       ReplyType = 395

	ReplyErrNoSuchNick       ReplyType = 401
	ReplyErrNoSuchServer     ReplyType = 402
	ReplyErrNoSuchChannel    ReplyType = 403
	ReplyErrCannotSendToChan ReplyType = 404
	ReplyErrTooManyChannels  ReplyType = 405
	ReplyErrWasNoSuchNick    ReplyType = 406
	ReplyErrTooManyTargets   ReplyType = 407
	ReplyErrNoSuchService    ReplyType = 408
	ReplyErrNoOrigin         ReplyType = 409
	ReplyErrNoRecipient      ReplyType = 411
	ReplyErrNoTextToSend     ReplyType = 412
	ReplyErrNoTopLevel       ReplyType = 413
	ReplyErrWildTopLevel     ReplyType = 414
	ReplyErrBadMask          ReplyType = 415
	ReplyErrUnknownCommand   ReplyType = 421
	ReplyErrNoMotd           ReplyType = 422
	ReplyErrNoAdminInfo      ReplyType = 423
	ReplyErrFileError        ReplyType = 424
	ReplyErrNoNicknameGiven  ReplyType = 431
	ReplyErrErroneusNickname ReplyType = 432
	ReplyErrNicknameInUse    ReplyType = 433
	ReplyErrNickCollision    ReplyType = 436
	ReplyErrUnavailResource  ReplyType = 437
	ReplyErrUserNotInChannel ReplyType = 441
	ReplyErrNotOnChannel     ReplyType = 442
	ReplyErrUserOnChannel    ReplyType = 443
	ReplyErrNoLogin          ReplyType = 444
	ReplyErrSummonDisabled   ReplyType = 445
	ReplyErrUsersDisabled    ReplyType = 446
	ReplyErrNotRegistered    ReplyType = 451
	ReplyErrNeedMoreParams   ReplyType = 461
	ReplyErrAlreadyRegistred ReplyType = 462
	ReplyErrNoPermForHost    ReplyType = 463
	ReplyErrPasswdMismatch   ReplyType = 464
	ReplyErrYoureBannedCreep ReplyType = 465
	ReplyErrYouWillBeBanned  ReplyType = 466
	ReplyErrKeySet           ReplyType = 467
	ReplyErrChannelIsFull    ReplyType = 471
	ReplyErrUnknownMode      ReplyType = 472
	ReplyErrInviteOnlyChan   ReplyType = 473
	ReplyErrBannedFromChan   ReplyType = 474
	ReplyErrBadChannelKey    ReplyType = 475
	ReplyErrBadChanMask      ReplyType = 476
	ReplyErrNoChanModes      ReplyType = 477
	ReplyErrBanListFull      ReplyType = 478
	ReplyErrNoPrivileges     ReplyType = 481
	ReplyErrChanOPrivsNeeded ReplyType = 482
	ReplyErrCantKillServer   ReplyType = 483
	ReplyErrRestricted       ReplyType = 484
	ReplyErrUniqOpPrivsNeed  ReplyType = 485
	ReplyErrNoOperHost       ReplyType = 491
	ReplyErrUModeUnknownFlag ReplyType = 501
	ReplyErrUsersDontMatch   ReplyType = 502
)

// ParseReplyType requires raw to be exactly three ASCII digits, and the
// resulting number to fall in one of the three disjoint reply ranges: PRV
// (000-099), RPL (200-399), or ERR (400-599). Values in
// 100-199, or outside 000-599, are rejected.
func ParseReplyType(raw string) (ReplyType, error) {
	if len(raw) != 3 {
		return 0, newParseError("ReplyType")
	}
	var n uint16
	for i := 0; i < 3; i++ {
		c := raw[i]
		if !isDigit(c) {
			return 0, newParseError("ReplyType")
		}
		n = n*10 + uint16(c-'0')
	}
	switch {
	case n <= 99, n >= 200 && n <= 399, n >= 400 && n <= 599:
		return ReplyType(n), nil
	default:
		return 0, newParseError("ReplyType")
	}
}

// String renders the reply code as three zero-padded decimal digits.
func (r ReplyType) String() string {
	return fmt.Sprintf("%03d", uint16(r))
}

// IsPrv reports whether r falls in the 000-099 range.
func (r ReplyType) IsPrv() bool { return uint16(r) <= 99 }

// IsRpl reports whether r falls in the 200-399 range.
func (r ReplyType) IsRpl() bool { return uint16(r) >= 200 && uint16(r) <= 399 }

// IsErr reports whether r falls in the 400-599 range.
func (r ReplyType) IsErr() bool { return uint16(r) >= 400 && uint16(r) <= 599 }

// Reply pairs a numeric ReplyType with its parameter list.
type Reply struct {
	Type   ReplyType
	Params MessageParams
}

func (r Reply) String() string {
	if r.Params.Len() == 0 {
		return r.Type.String()
	}
	return r.Type.String() + " " + r.Params.String()
}
