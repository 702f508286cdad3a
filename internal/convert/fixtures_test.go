package convert

const sampleMarker = "p5.prototype.registerMethod('init', function p5PlayInit() {"

const sampleSource = `// p5play
let log = console.log;

p5.prototype.registerMethod('init', function p5PlayInit() {
    // internal state
    this.p5play = {};

    this._hidden = 1;

    /**
     * Makes the sprite jump
     * @param {Number} height
     */
    this.jump = function (height) {
        this.vel.y = -height;
    };

    this.loadImg = this.loadImage = function (url) {
        return url;
    };

    this.Group = class extends Array {
        constructor() {
            super();
        }

        size() {
            return this.length;
        }
    };

    this.allSprites = new this.Group();

    this.Sprite.prototype.addAnimation =
        function () {};

    this.showAd = (type) => {
        delete this.ad;
        return type;
    };

    this.keyboard = this.kb;

    this.getFPS ??= () => this.p5play._fps;
});

p5.prototype.registerMethod('pre', function () {});
`

const sampleOutput = `module.exports = {
    'p5' : {

    /**
     * Makes the sprite jump
     * @param {Number} height
     */
    jump: function (height) {
        this.vel.y = -height;
    },

    loadImg: function (url) {
        return url;
    },

    loadImage: function (url) {
        return url;
    },

    Group: class extends Array {
        constructor() {
            super();
        }

        size() {
            return this.length;
        }
    },

    allSprites: new this.Group(),

    showAd: (type) => {
        return type;
    },

    keyboard: this.kb,

    getFPS: () => this.p5play._fps

    }
}`
