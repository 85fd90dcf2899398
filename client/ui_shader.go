package client

// uiShaderSrc draws Vertex5 data in pixel space with a flat tint
const uiShaderSrc = `//shader:vertex
#version 410

layout(location = 0) in vec3 vertPos;
layout(location = 1) in vec2 vertUV;

uniform mat4 projMat;

out vec2 uv;

void main()
{
    uv = vertUV;
    gl_Position = projMat * vec4(vertPos, 1.0);
}

//shader:fragment
#version 410

in vec2 uv;

uniform float time;

out vec4 fragColor;

void main()
{
    float pulse = 0.75 + 0.25 * sin(time);
    fragColor = vec4(uv * pulse, 0.6, 1.0);
}
`
