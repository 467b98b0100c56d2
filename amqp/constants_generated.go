package amqp

const FrameMethod = 1

const FrameHeader = 2

const FrameBody = 3

const FrameHeartbeat = 8

const FrameMinSize = 4096

const FrameEnd = 206

const ReplySuccess = 200

const ContentTooLarge = 311

const NoConsumers = 313

const ConnectionForced = 320

const InvalidPath = 402

const AccessRefused = 403

const NotFound = 404

const ResourceLocked = 405

const PreconditionFailed = 406

const FrameError = 501

const SyntaxError = 502

const CommandInvalid = 503

const ChannelError = 504

const UnexpectedFrame = 505

const ResourceError = 506

const NotAllowed = 530

const NotImplemented = 540

const InternalError = 541

const ClassConnection = 10

const ClassChannel = 20

const ClassExchange = 40

const ClassQueue = 50

const ClassBasic = 60

const ClassTx = 90

// ConstantsNameMap maps reply codes to their protocol names
var ConstantsNameMap = map[uint16]string{

	1: "FRAME-METHOD",

	2: "FRAME-HEADER",

	3: "FRAME-BODY",

	8: "FRAME-HEARTBEAT",

	4096: "FRAME-MIN-SIZE",

	206: "FRAME-END",

	200: "REPLY-SUCCESS",

	311: "CONTENT-TOO-LARGE",

	313: "NO-CONSUMERS",

	320: "CONNECTION-FORCED",

	402: "INVALID-PATH",

	403: "ACCESS-REFUSED",

	404: "NOT-FOUND",

	405: "RESOURCE-LOCKED",

	406: "PRECONDITION-FAILED",

	501: "FRAME-ERROR",

	502: "SYNTAX-ERROR",

	503: "COMMAND-INVALID",

	504: "CHANNEL-ERROR",

	505: "UNEXPECTED-FRAME",

	506: "RESOURCE-ERROR",

	530: "NOT-ALLOWED",

	540: "NOT-IMPLEMENTED",

	541: "INTERNAL-ERROR",
}
