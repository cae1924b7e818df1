package crikey

import (
	"strconv"
	"strings"
)

// Command is a tagged variant over the ~45 RFC 2812 command shapes. Go has
// no sum types, so Command is a single struct carrying every field any verb
// might need; Kind selects which fields are meaningful. This mirrors the
// per-field contracts fixed in the command table below: only the fields
// documented for a given Kind are populated by Parse/NewXxx constructors.
type Command struct {
	Kind string

	Nickname  Nickname
	Nicknames KeywordList[Nickname]
	Username  Username
	Usernames []Username
	Channel   Channel
	Channels  []Channel
	Keys      []ChannelKey
	Recipient Recipient

	Recipients KeywordList[Recipient]

	// IsChannelMode distinguishes the channel-mode shape of MODE from the
	// user-mode shape; both share the MODE wire verb.
	IsChannelMode bool

	TargetMask    TargetMask
	HasTargetMask bool

	StatsQuery    StatsQuery
	HasStatsQuery bool

	Password  string
	Realname  string
	Mode      uint8
	Modes     string
	Name      string
	Info      string
	Text      string
	Reason    string
	HasReason bool
	Topic     string
	HasTopic  bool
	Target    string
	HasTarget bool
	Mask      string
	HasMask   bool
	Type      string
	HasType   bool
	Count     uint16
	HasCount  bool
	Port      uint16
	Remote    string
	HasRemote bool
	Server    string
	Comment   string
	HasComment bool
	From      string
	HasFrom   bool
	To        string
	HasTo     bool
	User       string
	Message    string
	HasMessage bool
	JoinAll   bool
}

type commandShape struct {
	minArity int
	maxArity int
	parse    func(MessageParams) (Command, error)
	render   func(Command) MessageParams
}

// ParseCommand looks up verb in the dispatch table and, if its arity is
// within the shape's declared range, builds the typed Command. An
// unrecognized verb or an out-of-range arity is a parse failure.
func ParseCommand(verb string, params MessageParams) (Command, error) {
	shape, ok := commandTable[strings.ToUpper(verb)]
	if !ok {
		return Command{}, newParseError("Command")
	}
	if params.Len() < shape.minArity || params.Len() > shape.maxArity {
		return Command{}, newParseError("Command")
	}
	return shape.parse(params)
}

// Render converts c back to its canonical verb and MessageParams.
func (c Command) Render() (string, MessageParams) {
	shape, ok := commandTable[c.Kind]
	if !ok {
		return c.Kind, MessageParams{}
	}
	return c.Kind, shape.render(c)
}

// String renders the full wire form "VERB param param :trailing".
func (c Command) String() string {
	verb, params := c.Render()
	if params.Len() == 0 {
		return verb
	}
	return verb + " " + params.String()
}

func mustPush(p *MessageParams, s string) {
	_ = p.Push(s) // construction-time builders never exceed the limit
}

var commandTable map[string]commandShape

func init() {
	commandTable = map[string]commandShape{
		verbPass: {1, 1, parsePass, renderPass},
		verbNick: {1, 1, parseNick, renderNick},
		verbUser: {4, 4, parseUser, renderUser},
		verbOper: {2, 2, parseOper, renderOper},
		verbUserMode: {2, 15, parseMode, renderMode}, // shared with ChannelMode; parse sets IsChannelMode
		verbService:  {6, 6, parseService, renderService},
		verbQuit:     {0, 1, parseQuit, renderQuit},
		verbSQuit:    {2, 2, parseSQuit, renderSQuit},
		verbJoin:     {1, 2, parseJoin, renderJoin},
		verbPart:     {1, 2, parsePart, renderPart},
		verbTopic:    {1, 2, parseTopic, renderTopic},
		verbNames:    {0, 2, parseNames, renderNames},
		verbList:     {0, 2, parseList, renderList},
		verbInvite:   {2, 2, parseInvite, renderInvite},
		verbKick:     {2, 3, parseKick, renderKick},
		verbPrivmsg:  {2, 2, parsePrivmsg, renderPrivmsg},
		verbNotice:   {2, 2, parseNotice, renderNotice},
		verbMotd:     {0, 1, parseMotd, renderMotd},
		verbLUsers:   {0, 2, parseLUsers, renderLUsers},
		verbVersion:  {0, 1, parseVersion, renderVersion},
		verbStats:    {0, 2, parseStats, renderStats},
		verbLinks:    {0, 2, parseLinks, renderLinks},
		verbTime:     {0, 1, parseTime, renderTime},
		verbConnect:  {2, 3, parseConnect, renderConnect},
		verbTrace:    {0, 1, parseTrace, renderTrace},
		verbAdmin:    {0, 1, parseAdmin, renderAdmin},
		verbInfo:     {0, 1, parseInfo, renderInfo},
		verbServlist: {0, 2, parseServlist, renderServlist},
		verbSQuery:   {2, 2, parseSQuery, renderSQuery},
		verbWho:      {0, 2, parseWho, renderWho},
		verbWhois:    {1, 2, parseWhois, renderWhois},
		verbWhowas:   {1, 3, parseWhowas, renderWhowas},
		verbKill:     {2, 2, parseKill, renderKill},
		verbPing:     {0, 2, parsePing, renderPing},
		verbPong:     {1, 2, parsePong, renderPong},
		verbError:    {1, 1, parseError_, renderError},
		verbAway:     {0, 1, parseAway, renderAway},
		verbRehash:   {0, 0, parseNoArgs(verbRehash), renderNoArgs},
		verbDie:      {0, 0, parseNoArgs(verbDie), renderNoArgs},
		verbRestart:  {0, 0, parseNoArgs(verbRestart), renderNoArgs},
		verbSummon:   {1, 3, parseSummon, renderSummon},
		verbUsers:    {0, 1, parseUsers, renderUsers},
		verbWallops:  {1, 1, parseWallops, renderWallops},
		verbUserhost: {1, 15, parseUserhost, renderUserhost},
		verbIson:     {1, 15, parseIson, renderIson},
	}
}

// --- PASS ---

func parsePass(p MessageParams) (Command, error) {
	return Command{Kind: verbPass, Password: p.Get(1)}, nil
}
func renderPass(c Command) MessageParams {
	params, _ := NewMessageParams(c.Password)
	return params
}

// NewPass builds a PASS command.
func NewPass(password string) Command { return Command{Kind: verbPass, Password: password} }

// --- NICK ---

func parseNick(p MessageParams) (Command, error) {
	nick, err := ParseNickname(p.Get(1))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	return Command{Kind: verbNick, Nickname: nick}, nil
}
func renderNick(c Command) MessageParams {
	params, _ := NewMessageParams(c.Nickname.String())
	return params
}

// NewNick builds a NICK command.
func NewNick(nick Nickname) Command { return Command{Kind: verbNick, Nickname: nick} }

// --- USER ---

func parseUser(p MessageParams) (Command, error) {
	user, err := ParseUsername(p.Get(1))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	mode, err := strconv.ParseUint(p.Get(2), 10, 8)
	if err != nil {
		return Command{}, newParseError("Command")
	}
	if p.Get(3) != "*" {
		return Command{}, newParseError("Command")
	}
	return Command{Kind: verbUser, Username: user, Mode: uint8(mode), Realname: p.Get(4)}, nil
}
func renderUser(c Command) MessageParams {
	params, _ := NewMessageParams(c.Username.String(), strconv.Itoa(int(c.Mode)), "*", c.Realname)
	return params
}

// NewUser builds a USER command. The third wire parameter is always the
// literal "*" reserved placeholder.
func NewUser(username Username, mode uint8, realname string) Command {
	return Command{Kind: verbUser, Username: username, Mode: mode, Realname: realname}
}

// --- OPER (supplemented) ---

func parseOper(p MessageParams) (Command, error) {
	return Command{Kind: verbOper, Name: p.Get(1), Password: p.Get(2)}, nil
}
func renderOper(c Command) MessageParams {
	params, _ := NewMessageParams(c.Name, c.Password)
	return params
}

// NewOper builds an OPER command.
func NewOper(name, password string) Command { return Command{Kind: verbOper, Name: name, Password: password} }

// --- MODE (ChannelMode / UserMode disambiguated on parse) ---

func parseMode(p MessageParams) (Command, error) {
	rest := strings.Join(p.All()[1:], " ")
	if ch, err := ParseChannel(p.Get(1)); err == nil {
		return Command{Kind: verbUserMode, IsChannelMode: true, Channel: ch, Modes: rest}, nil
	}
	if nick, err := ParseNickname(p.Get(1)); err == nil {
		return Command{Kind: verbUserMode, Nickname: nick, Modes: rest}, nil
	}
	return Command{}, newParseError("Command")
}
func renderMode(c Command) MessageParams {
	var params MessageParams
	if c.IsChannelMode {
		mustPush(&params, c.Channel.String())
	} else {
		mustPush(&params, c.Nickname.String())
	}
	for _, field := range strings.Fields(c.Modes) {
		mustPush(&params, field)
	}
	return params
}

// NewUserMode builds a user MODE command.
func NewUserMode(nick Nickname, modes string) Command {
	return Command{Kind: verbUserMode, Nickname: nick, Modes: modes}
}

// NewChannelMode builds a channel MODE command. Both user and channel MODE
// share the MODE wire verb; IsChannelMode disambiguates them.
func NewChannelMode(channel Channel, modes string) Command {
	return Command{Kind: verbUserMode, IsChannelMode: true, Channel: channel, Modes: modes}
}

// --- SERVICE ---

func parseService(p MessageParams) (Command, error) {
	nick, err := ParseNickname(p.Get(1))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	dist, err := ParseTargetMask(p.Get(3))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	return Command{Kind: verbService, Nickname: nick, TargetMask: dist, HasTargetMask: true, Info: p.Get(6)}, nil
}
func renderService(c Command) MessageParams {
	params, _ := NewMessageParams(c.Nickname.String(), "*", c.TargetMask.String(), "*", "*", c.Info)
	return params
}

// NewService builds a SERVICE command.
func NewService(nick Nickname, distribution TargetMask, info string) Command {
	return Command{Kind: verbService, Nickname: nick, TargetMask: distribution, HasTargetMask: true, Info: info}
}

// --- QUIT ---

func parseQuit(p MessageParams) (Command, error) {
	if p.Len() == 0 {
		return Command{Kind: verbQuit}, nil
	}
	return Command{Kind: verbQuit, Message: p.Get(1), HasMessage: true}, nil
}
func renderQuit(c Command) MessageParams {
	if !c.HasMessage {
		return MessageParams{}
	}
	params, _ := NewMessageParams(c.Message)
	return params
}

// NewQuit builds a QUIT command carrying message as its reason.
func NewQuit(message string) Command { return Command{Kind: verbQuit, Message: message, HasMessage: true} }

// NewQuitSilent builds a QUIT command with no reason.
func NewQuitSilent() Command { return Command{Kind: verbQuit} }

// --- SQUIT (supplemented) ---

func parseSQuit(p MessageParams) (Command, error) {
	return Command{Kind: verbSQuit, Server: p.Get(1), Comment: p.Get(2)}, nil
}
func renderSQuit(c Command) MessageParams {
	params, _ := NewMessageParams(c.Server, c.Comment)
	return params
}

// NewSQuit builds an SQUIT command.
func NewSQuit(server, comment string) Command { return Command{Kind: verbSQuit, Server: server, Comment: comment} }

// --- JOIN ---

func parseJoin(p MessageParams) (Command, error) {
	if p.Len() == 1 && p.Get(1) == "0" {
		return Command{Kind: verbJoin, JoinAll: true}, nil
	}
	channels, err := parseChannelList(p.Get(1))
	if err != nil {
		return Command{}, err
	}
	var keys []ChannelKey
	if p.Len() == 2 {
		for _, raw := range strings.Split(p.Get(2), ",") {
			k, err := ParseChannelKey(raw)
			if err != nil {
				return Command{}, newParseError("Command")
			}
			keys = append(keys, k)
		}
	}
	return Command{Kind: verbJoin, Channels: channels, Keys: keys}, nil
}
func renderJoin(c Command) MessageParams {
	var params MessageParams
	if c.JoinAll {
		mustPush(&params, "0")
		return params
	}
	mustPush(&params, joinChannels(c.Channels))
	if len(c.Keys) > 0 {
		keys := make([]string, len(c.Keys))
		for i, k := range c.Keys {
			keys[i] = k.String()
		}
		mustPush(&params, strings.Join(keys, ","))
	}
	return params
}

// NewJoin builds a JOIN command for one or more channels, with optional keys.
func NewJoin(channels []Channel, keys []ChannelKey) Command {
	return Command{Kind: verbJoin, Channels: channels, Keys: keys}
}

// NewJoinAll builds the JOIN 0 "leave every channel" form.
func NewJoinAll() Command { return Command{Kind: verbJoin, JoinAll: true} }

// --- PART ---

func parsePart(p MessageParams) (Command, error) {
	channels, err := parseChannelList(p.Get(1))
	if err != nil {
		return Command{}, err
	}
	if p.Len() == 2 {
		return Command{Kind: verbPart, Channels: channels, Reason: p.Get(2), HasReason: true}, nil
	}
	return Command{Kind: verbPart, Channels: channels}, nil
}
func renderPart(c Command) MessageParams {
	var params MessageParams
	mustPush(&params, joinChannels(c.Channels))
	if c.HasReason {
		mustPush(&params, c.Reason)
	}
	return params
}

// NewPart builds a PART command.
func NewPart(channels []Channel, reason string, hasReason bool) Command {
	return Command{Kind: verbPart, Channels: channels, Reason: reason, HasReason: hasReason}
}

// --- TOPIC ---

func parseTopic(p MessageParams) (Command, error) {
	ch, err := ParseChannel(p.Get(1))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	if p.Len() == 2 {
		return Command{Kind: verbTopic, Channel: ch, Topic: p.Get(2), HasTopic: true}, nil
	}
	return Command{Kind: verbTopic, Channel: ch}, nil
}
func renderTopic(c Command) MessageParams {
	var params MessageParams
	mustPush(&params, c.Channel.String())
	if c.HasTopic {
		mustPush(&params, c.Topic)
	}
	return params
}

// NewTopicQuery builds a one-argument TOPIC (query) command.
func NewTopicQuery(channel Channel) Command { return Command{Kind: verbTopic, Channel: channel} }

// NewTopicSet builds a two-argument TOPIC (set, possibly to empty) command.
func NewTopicSet(channel Channel, topic string) Command {
	return Command{Kind: verbTopic, Channel: channel, Topic: topic, HasTopic: true}
}

// --- NAMES / LIST (0/1/2 params: none; channels; channels + target) ---

func parseNames(p MessageParams) (Command, error) { return parseChannelsAndTarget(verbNames, p) }
func renderNames(c Command) MessageParams          { return renderChannelsAndTarget(c) }

// NewNames builds a NAMES command.
func NewNames(channels []Channel, target string, hasTarget bool) Command {
	return Command{Kind: verbNames, Channels: channels, Target: target, HasTarget: hasTarget}
}

func parseList(p MessageParams) (Command, error) { return parseChannelsAndTarget(verbList, p) }
func renderList(c Command) MessageParams          { return renderChannelsAndTarget(c) }

// NewList builds a LIST command.
func NewList(channels []Channel, target string, hasTarget bool) Command {
	return Command{Kind: verbList, Channels: channels, Target: target, HasTarget: hasTarget}
}

func parseChannelsAndTarget(kind string, p MessageParams) (Command, error) {
	cmd := Command{Kind: kind}
	if p.Len() >= 1 && p.Get(1) != "" {
		channels, err := parseChannelList(p.Get(1))
		if err != nil {
			return Command{}, err
		}
		cmd.Channels = channels
	}
	if p.Len() == 2 {
		cmd.Target = p.Get(2)
		cmd.HasTarget = true
	}
	return cmd, nil
}
func renderChannelsAndTarget(c Command) MessageParams {
	var params MessageParams
	if len(c.Channels) > 0 {
		mustPush(&params, joinChannels(c.Channels))
	}
	if c.HasTarget {
		if len(c.Channels) == 0 {
			mustPush(&params, "")
		}
		mustPush(&params, c.Target)
	}
	return params
}

// --- INVITE ---

func parseInvite(p MessageParams) (Command, error) {
	nick, err := ParseNickname(p.Get(1))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	ch, err := ParseChannel(p.Get(2))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	return Command{Kind: verbInvite, Nickname: nick, Channel: ch}, nil
}
func renderInvite(c Command) MessageParams {
	params, _ := NewMessageParams(c.Nickname.String(), c.Channel.String())
	return params
}

// NewInvite builds an INVITE command.
func NewInvite(nick Nickname, channel Channel) Command {
	return Command{Kind: verbInvite, Nickname: nick, Channel: channel}
}

// --- KICK ---

func parseKick(p MessageParams) (Command, error) {
	channels, err := parseChannelList(p.Get(1))
	if err != nil {
		return Command{}, err
	}
	users, err := ParseKeywordList(p.Get(2), ParseUsername)
	if err != nil {
		return Command{}, newParseError("Command")
	}
	cmd := Command{Kind: verbKick, Channels: channels, Usernames: users}
	if p.Len() == 3 {
		cmd.Comment = p.Get(3)
		cmd.HasComment = true
	}
	return cmd, nil
}
func renderKick(c Command) MessageParams {
	var params MessageParams
	mustPush(&params, joinChannels(c.Channels))
	names := make([]string, len(c.Usernames))
	for i, u := range c.Usernames {
		names[i] = u.String()
	}
	mustPush(&params, strings.Join(names, ","))
	if c.HasComment {
		mustPush(&params, c.Comment)
	}
	return params
}

// NewKick builds a KICK command.
func NewKick(channels []Channel, users []Username, comment string, hasComment bool) Command {
	return Command{Kind: verbKick, Channels: channels, Usernames: users, Comment: comment, HasComment: hasComment}
}

// --- PRIVMSG / NOTICE ---

func parsePrivmsg(p MessageParams) (Command, error) { return parseMsgLike(verbPrivmsg, p) }
func renderPrivmsg(c Command) MessageParams          { return renderMsgLike(c) }

// NewPrivmsg builds a PRIVMSG command.
func NewPrivmsg(recipients KeywordList[Recipient], text string) Command {
	return Command{Kind: verbPrivmsg, Recipients: recipients, Text: text}
}

func parseNotice(p MessageParams) (Command, error) { return parseMsgLike(verbNotice, p) }
func renderNotice(c Command) MessageParams          { return renderMsgLike(c) }

// NewNotice builds a NOTICE command.
func NewNotice(recipients KeywordList[Recipient], text string) Command {
	return Command{Kind: verbNotice, Recipients: recipients, Text: text}
}

func parseMsgLike(kind string, p MessageParams) (Command, error) {
	recipients, err := ParseKeywordList(p.Get(1), ParseRecipient)
	if err != nil {
		return Command{}, newParseError("Command")
	}
	return Command{Kind: kind, Recipients: recipients, Text: p.Get(2)}, nil
}
func renderMsgLike(c Command) MessageParams {
	params, _ := NewMessageParams(c.Recipients.String(), c.Text)
	return params
}

// --- MOTD / VERSION / TIME / TRACE / ADMIN / INFO / USERS (optional target) ---

func parseMotd(p MessageParams) (Command, error)    { return parseOptionalTarget(verbMotd, p) }
func renderMotd(c Command) MessageParams             { return renderOptionalTarget(c) }
func parseVersion(p MessageParams) (Command, error) { return parseOptionalTarget(verbVersion, p) }
func renderVersion(c Command) MessageParams          { return renderOptionalTarget(c) }
func parseTime(p MessageParams) (Command, error)    { return parseOptionalTarget(verbTime, p) }
func renderTime(c Command) MessageParams             { return renderOptionalTarget(c) }
func parseTrace(p MessageParams) (Command, error)   { return parseOptionalTarget(verbTrace, p) }
func renderTrace(c Command) MessageParams            { return renderOptionalTarget(c) }
func parseAdmin(p MessageParams) (Command, error)   { return parseOptionalTarget(verbAdmin, p) }
func renderAdmin(c Command) MessageParams            { return renderOptionalTarget(c) }
func parseInfo(p MessageParams) (Command, error)    { return parseOptionalTarget(verbInfo, p) }
func renderInfo(c Command) MessageParams             { return renderOptionalTarget(c) }
func parseUsers(p MessageParams) (Command, error)   { return parseOptionalTarget(verbUsers, p) }
func renderUsers(c Command) MessageParams            { return renderOptionalTarget(c) }

func parseOptionalTarget(kind string, p MessageParams) (Command, error) {
	if p.Len() == 0 {
		return Command{Kind: kind}, nil
	}
	return Command{Kind: kind, Target: p.Get(1), HasTarget: true}, nil
}
func renderOptionalTarget(c Command) MessageParams {
	if !c.HasTarget {
		return MessageParams{}
	}
	params, _ := NewMessageParams(c.Target)
	return params
}

// NewMotd builds a MOTD command.
func NewMotd(target string, hasTarget bool) Command { return Command{Kind: verbMotd, Target: target, HasTarget: hasTarget} }

// NewVersion builds a VERSION command.
func NewVersion(target string, hasTarget bool) Command {
	return Command{Kind: verbVersion, Target: target, HasTarget: hasTarget}
}

// NewTime builds a TIME command.
func NewTime(target string, hasTarget bool) Command { return Command{Kind: verbTime, Target: target, HasTarget: hasTarget} }

// NewTrace builds a TRACE command.
func NewTrace(target string, hasTarget bool) Command {
	return Command{Kind: verbTrace, Target: target, HasTarget: hasTarget}
}

// NewAdmin builds an ADMIN command.
func NewAdmin(target string, hasTarget bool) Command {
	return Command{Kind: verbAdmin, Target: target, HasTarget: hasTarget}
}

// NewInfo builds an INFO command.
func NewInfo(target string, hasTarget bool) Command { return Command{Kind: verbInfo, Target: target, HasTarget: hasTarget} }

// NewUsers builds a USERS command.
func NewUsers(target string, hasTarget bool) Command {
	return Command{Kind: verbUsers, Target: target, HasTarget: hasTarget}
}

// --- LUSERS (0/1/2: mask; mask+target) ---

func parseLUsers(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbLUsers}
	if p.Len() >= 1 {
		cmd.Mask, cmd.HasMask = p.Get(1), true
	}
	if p.Len() == 2 {
		cmd.Target, cmd.HasTarget = p.Get(2), true
	}
	return cmd, nil
}
func renderLUsers(c Command) MessageParams {
	var params MessageParams
	if c.HasMask {
		mustPush(&params, c.Mask)
	}
	if c.HasTarget {
		mustPush(&params, c.Target)
	}
	return params
}

// NewLUsers builds a LUSERS command.
func NewLUsers(mask string, hasMask bool, target string, hasTarget bool) Command {
	return Command{Kind: verbLUsers, Mask: mask, HasMask: hasMask, Target: target, HasTarget: hasTarget}
}

// --- STATS ---

func parseStats(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbStats}
	if p.Len() >= 1 {
		q, err := ParseStatsQuery(p.Get(1))
		if err != nil {
			return Command{}, newParseError("Command")
		}
		cmd.StatsQuery, cmd.HasStatsQuery = q, true
	}
	if p.Len() == 2 {
		cmd.Target, cmd.HasTarget = p.Get(2), true
	}
	return cmd, nil
}
func renderStats(c Command) MessageParams {
	var params MessageParams
	if c.HasStatsQuery {
		mustPush(&params, c.StatsQuery.String())
	}
	if c.HasTarget {
		mustPush(&params, c.Target)
	}
	return params
}

// NewStats builds a STATS command.
func NewStats(query StatsQuery, hasQuery bool, target string, hasTarget bool) Command {
	return Command{Kind: verbStats, StatsQuery: query, HasStatsQuery: hasQuery, Target: target, HasTarget: hasTarget}
}

// --- LINKS (two-argument wire order "target mask", decoded as mask, target) ---

func parseLinks(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbLinks}
	switch p.Len() {
	case 0:
	case 1:
		cmd.Mask, cmd.HasMask = p.Get(1), true
	case 2:
		// wire order is target, mask; decoded fields store (mask, target).
		cmd.Target, cmd.HasTarget = p.Get(1), true
		cmd.Mask, cmd.HasMask = p.Get(2), true
	}
	return cmd, nil
}
func renderLinks(c Command) MessageParams {
	var params MessageParams
	switch {
	case c.HasTarget && c.HasMask:
		mustPush(&params, c.Target)
		mustPush(&params, c.Mask)
	case c.HasMask:
		mustPush(&params, c.Mask)
	}
	return params
}

// NewLinks builds a LINKS command. Mask is the server mask to filter on;
// Target is the remote server to query. The wire form always emits
// "target mask" when both are present, the reverse of the (mask, target)
// order of this constructor's parameters and of the decoded LINKS variant.
func NewLinks(mask string, hasMask bool, target string, hasTarget bool) Command {
	return Command{Kind: verbLinks, Mask: mask, HasMask: hasMask, Target: target, HasTarget: hasTarget}
}

// --- CONNECT ---

func parseConnect(p MessageParams) (Command, error) {
	port, err := strconv.ParseUint(p.Get(2), 10, 16)
	if err != nil {
		return Command{}, newParseError("Command")
	}
	cmd := Command{Kind: verbConnect, Target: p.Get(1), Port: uint16(port)}
	if p.Len() == 3 {
		cmd.Remote, cmd.HasRemote = p.Get(3), true
	}
	return cmd, nil
}
func renderConnect(c Command) MessageParams {
	var params MessageParams
	mustPush(&params, c.Target)
	mustPush(&params, strconv.Itoa(int(c.Port)))
	if c.HasRemote {
		mustPush(&params, c.Remote)
	}
	return params
}

// NewConnect builds a CONNECT command.
func NewConnect(target string, port uint16, remote string, hasRemote bool) Command {
	return Command{Kind: verbConnect, Target: target, Port: port, Remote: remote, HasRemote: hasRemote}
}

// --- SERVLIST ---

func parseServlist(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbServlist}
	if p.Len() >= 1 {
		cmd.Mask, cmd.HasMask = p.Get(1), true
	}
	if p.Len() == 2 {
		cmd.Type, cmd.HasType = p.Get(2), true
	}
	return cmd, nil
}
func renderServlist(c Command) MessageParams {
	var params MessageParams
	if c.HasMask {
		mustPush(&params, c.Mask)
	}
	if c.HasType {
		mustPush(&params, c.Type)
	}
	return params
}

// NewServlist builds a SERVLIST command.
func NewServlist(mask string, hasMask bool, typ string, hasType bool) Command {
	return Command{Kind: verbServlist, Mask: mask, HasMask: hasMask, Type: typ, HasType: hasType}
}

// --- SQUERY ---

func parseSQuery(p MessageParams) (Command, error) {
	rec, err := ParseRecipient(p.Get(1))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	return Command{Kind: verbSQuery, Recipient: rec, Text: p.Get(2)}, nil
}
func renderSQuery(c Command) MessageParams {
	params, _ := NewMessageParams(c.Recipient.String(), c.Text)
	return params
}

// NewSQuery builds an SQUERY command.
func NewSQuery(recipient Recipient, text string) Command {
	return Command{Kind: verbSQuery, Recipient: recipient, Text: text}
}

// --- WHO ---

func parseWho(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbWho}
	if p.Len() >= 1 {
		cmd.Mask, cmd.HasMask = p.Get(1), true
	}
	if p.Len() == 2 {
		if p.Get(2) != "o" {
			return Command{}, newParseError("Command")
		}
		cmd.Type = "o"
	}
	return cmd, nil
}
func renderWho(c Command) MessageParams {
	var params MessageParams
	if c.HasMask {
		mustPush(&params, c.Mask)
	}
	if c.Type == "o" {
		mustPush(&params, "o")
	}
	return params
}

// NewWho builds a WHO command.
func NewWho(mask string, hasMask bool, opOnly bool) Command {
	c := Command{Kind: verbWho, Mask: mask, HasMask: hasMask}
	if opOnly {
		c.Type = "o"
	}
	return c
}

// --- WHOIS (one-arg: mask only; two-arg: target first, mask second on the wire) ---

func parseWhois(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbWhois}
	if p.Len() == 1 {
		cmd.Mask, cmd.HasMask = p.Get(1), true
		return cmd, nil
	}
	cmd.Target, cmd.HasTarget = p.Get(1), true
	cmd.Mask, cmd.HasMask = p.Get(2), true
	return cmd, nil
}
func renderWhois(c Command) MessageParams {
	var params MessageParams
	if c.HasTarget {
		mustPush(&params, c.Target)
	}
	mustPush(&params, c.Mask)
	return params
}

// NewWhois builds a WHOIS command.
func NewWhois(mask string, target string, hasTarget bool) Command {
	return Command{Kind: verbWhois, Mask: mask, HasMask: true, Target: target, HasTarget: hasTarget}
}

// --- WHOWAS ---

func parseWhowas(p MessageParams) (Command, error) {
	nicks, err := ParseKeywordList(p.Get(1), ParseNickname)
	if err != nil {
		return Command{}, newParseError("Command")
	}
	cmd := Command{Kind: verbWhowas, Nicknames: nicks}
	if p.Len() >= 2 {
		count, err := strconv.ParseUint(p.Get(2), 10, 16)
		if err != nil {
			return Command{}, newParseError("Command")
		}
		cmd.Count, cmd.HasCount = uint16(count), true
	}
	if p.Len() == 3 {
		cmd.Target, cmd.HasTarget = p.Get(3), true
	}
	return cmd, nil
}
func renderWhowas(c Command) MessageParams {
	var params MessageParams
	mustPush(&params, c.Nicknames.String())
	if c.HasCount {
		mustPush(&params, strconv.Itoa(int(c.Count)))
	}
	if c.HasTarget {
		mustPush(&params, c.Target)
	}
	return params
}

// NewWhowas builds a WHOWAS command.
func NewWhowas(nicks KeywordList[Nickname], count uint16, hasCount bool, target string, hasTarget bool) Command {
	return Command{Kind: verbWhowas, Nicknames: nicks, Count: count, HasCount: hasCount, Target: target, HasTarget: hasTarget}
}

// --- KILL ---

func parseKill(p MessageParams) (Command, error) {
	nick, err := ParseNickname(p.Get(1))
	if err != nil {
		return Command{}, newParseError("Command")
	}
	return Command{Kind: verbKill, Nickname: nick, Comment: p.Get(2)}, nil
}
func renderKill(c Command) MessageParams {
	params, _ := NewMessageParams(c.Nickname.String(), c.Comment)
	return params
}

// NewKill builds a KILL command.
func NewKill(nick Nickname, comment string) Command { return Command{Kind: verbKill, Nickname: nick, Comment: comment} }

// --- PING / PONG ---

func parsePing(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbPing}
	switch p.Len() {
	case 0:
	case 1:
		cmd.To, cmd.HasTo = p.Get(1), true
	case 2:
		cmd.From, cmd.HasFrom = p.Get(1), true
		cmd.To, cmd.HasTo = p.Get(2), true
	}
	return cmd, nil
}
func renderPing(c Command) MessageParams {
	var params MessageParams
	if c.HasFrom {
		mustPush(&params, c.From)
	}
	if c.HasTo {
		mustPush(&params, c.To)
	}
	return params
}

// NewPing builds a one-argument PING command addressed to a destination.
func NewPing(to string) Command { return Command{Kind: verbPing, To: to, HasTo: true} }

// NewPingFromTo builds a two-argument PING command.
func NewPingFromTo(from, to string) Command {
	return Command{Kind: verbPing, From: from, HasFrom: true, To: to, HasTo: true}
}

func parsePong(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbPong, From: p.Get(1), HasFrom: true}
	if p.Len() == 2 {
		cmd.To, cmd.HasTo = p.Get(2), true
	}
	return cmd, nil
}
func renderPong(c Command) MessageParams {
	var params MessageParams
	mustPush(&params, c.From)
	if c.HasTo {
		mustPush(&params, c.To)
	}
	return params
}

// NewPong builds a PONG command.
func NewPong(from string, to string, hasTo bool) Command {
	return Command{Kind: verbPong, From: from, HasFrom: true, To: to, HasTo: hasTo}
}

// --- ERROR ---

func parseError_(p MessageParams) (Command, error) {
	return Command{Kind: verbError, Message: p.Get(1)}, nil
}
func renderError(c Command) MessageParams {
	params, _ := NewMessageParams(c.Message)
	return params
}

// NewError builds an ERROR command.
func NewError(message string) Command { return Command{Kind: verbError, Message: message} }

// --- AWAY ---

func parseAway(p MessageParams) (Command, error) {
	if p.Len() == 0 {
		return Command{Kind: verbAway}, nil
	}
	return Command{Kind: verbAway, Message: p.Get(1), HasMessage: true}, nil
}
func renderAway(c Command) MessageParams {
	if !c.HasMessage {
		return MessageParams{}
	}
	params, _ := NewMessageParams(c.Message)
	return params
}

// NewAway builds an AWAY command.
func NewAway(message string, hasMessage bool) Command {
	return Command{Kind: verbAway, Message: message, HasMessage: hasMessage}
}

// --- REHASH / DIE / RESTART (no arguments) ---

func parseNoArgs(kind string) func(MessageParams) (Command, error) {
	return func(MessageParams) (Command, error) { return Command{Kind: kind}, nil }
}
func renderNoArgs(Command) MessageParams { return MessageParams{} }

// NewRehash builds a REHASH command.
func NewRehash() Command { return Command{Kind: verbRehash} }

// NewDie builds a DIE command.
func NewDie() Command { return Command{Kind: verbDie} }

// NewRestart builds a RESTART command.
func NewRestart() Command { return Command{Kind: verbRestart} }

// --- SUMMON ---

func parseSummon(p MessageParams) (Command, error) {
	cmd := Command{Kind: verbSummon, User: p.Get(1)}
	if p.Len() >= 2 {
		cmd.Target, cmd.HasTarget = p.Get(2), true
	}
	if p.Len() == 3 {
		ch, err := ParseChannel(p.Get(3))
		if err != nil {
			return Command{}, newParseError("Command")
		}
		cmd.Channel = ch
	}
	return cmd, nil
}
func renderSummon(c Command) MessageParams {
	var params MessageParams
	mustPush(&params, c.User)
	if c.HasTarget {
		mustPush(&params, c.Target)
	}
	if c.Channel.Name != "" {
		mustPush(&params, c.Channel.String())
	}
	return params
}

// NewSummon builds a SUMMON command.
func NewSummon(user string, target string, hasTarget bool) Command {
	return Command{Kind: verbSummon, User: user, Target: target, HasTarget: hasTarget}
}

// --- WALLOPS ---

func parseWallops(p MessageParams) (Command, error) {
	return Command{Kind: verbWallops, Message: p.Get(1)}, nil
}
func renderWallops(c Command) MessageParams {
	params, _ := NewMessageParams(c.Message)
	return params
}

// NewWallops builds a WALLOPS command.
func NewWallops(message string) Command { return Command{Kind: verbWallops, Message: message} }

// --- USERHOST / ISON (KeywordList<Nickname>, but space-separated on the wire) ---

func parseUserhost(p MessageParams) (Command, error) { return parseNickList(verbUserhost, p) }
func renderUserhost(c Command) MessageParams          { return renderNickList(c) }

// NewUserhost builds a USERHOST command.
func NewUserhost(nicks KeywordList[Nickname]) Command { return Command{Kind: verbUserhost, Nicknames: nicks} }

func parseIson(p MessageParams) (Command, error) { return parseNickList(verbIson, p) }
func renderIson(c Command) MessageParams          { return renderNickList(c) }

// NewIson builds an ISON command.
func NewIson(nicks KeywordList[Nickname]) Command { return Command{Kind: verbIson, Nicknames: nicks} }

func parseNickList(kind string, p MessageParams) (Command, error) {
	joined := strings.Join(p.All(), ",")
	nicks, err := ParseKeywordList(joined, ParseNickname)
	if err != nil {
		return Command{}, newParseError("Command")
	}
	return Command{Kind: kind, Nicknames: nicks}, nil
}
func renderNickList(c Command) MessageParams {
	var params MessageParams
	for _, n := range c.Nicknames {
		mustPush(&params, n.String())
	}
	return params
}

// --- shared helpers ---

func parseChannelList(raw string) ([]Channel, error) {
	parts := strings.Split(raw, ",")
	channels := make([]Channel, 0, len(parts))
	for _, part := range parts {
		ch, err := ParseChannel(part)
		if err != nil {
			return nil, newParseError("Command")
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

func joinChannels(channels []Channel) string {
	names := make([]string, len(channels))
	for i, ch := range channels {
		names[i] = ch.String()
	}
	return strings.Join(names, ",")
}
